package handlers

import (
	"io"
	"net/http"
	"time"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 15 * time.Second

// Events streams the session as server-sent events: "state" for every state
// the client has not seen yet and one event per effect, named after it. The
// stream ends after the terminal state.
func (h *SessionHandler) Events(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	effects, stopEffects := s.SubscribeEffects()
	defer stopEffects()
	states, stopStates := s.SubscribeState()
	defer stopStates()

	metrics.HTTPStreamsOpen.Inc()
	defer metrics.HTTPStreamsOpen.Dec()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case st, open := <-states:
			if !open {
				return drainEffects(c, effects)
			}
			c.SSEvent("state", st)
			return true
		case e, open := <-effects:
			if !open {
				effects = nil
				return true
			}
			c.SSEvent(e.Name(), e)
			return true
		case <-keepAlive.C:
			_, _ = io.WriteString(w, ": keep-alive\n\n")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// drainEffects flushes effects emitted alongside the terminal state, such as
// finished, then ends the stream.
func drainEffects(c *gin.Context, effects <-chan checkout.Effect) bool {
	if effects == nil {
		return false
	}
	for e := range effects {
		c.SSEvent(e.Name(), e)
	}
	return false
}
