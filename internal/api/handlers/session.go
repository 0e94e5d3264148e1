package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"CheckoutSDK/internal/api/session"
	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"

	"github.com/gin-gonic/gin"
)

// DefaultSyncWait is how long an operation handler waits before answering
// 202 and leaving the operation to finish in the background.
const DefaultSyncWait = 5 * time.Second

type SessionHandler struct {
	registry *session.Registry
	syncWait time.Duration
}

func NewSessionHandler(registry *session.Registry, syncWait time.Duration) *SessionHandler {
	if syncWait <= 0 {
		syncWait = DefaultSyncWait
	}
	return &SessionHandler{registry: registry, syncWait: syncWait}
}

type sessionResponse struct {
	ID    string         `json:"id"`
	State checkout.State `json:"state"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var intent payment.Intent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	s, err := h.registry.Create(c.Request.Context(), intent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{ID: s.ID(), State: s.State()})
}

func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: s.ID(), State: s.State()})
}

func (h *SessionHandler) Authorize(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.run(c, s, s.Authorize)
}

type cardRequest struct {
	PAN            string `json:"pan" binding:"required"`
	Expiry         string `json:"expiry" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	CardholderName string `json:"cardholder_name" binding:"required"`
}

func (h *SessionHandler) SubmitCard(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	card := payment.NewCardDetails(req.PAN, req.Expiry, req.CVV, req.CardholderName)
	if err := card.Validate(); err != nil {
		writeError(c, err)
		return
	}

	h.run(c, s, func(ctx context.Context) error {
		return s.SubmitCard(ctx, card)
	})
}

func (h *SessionHandler) ChoosePlan(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var sel payment.PlanSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if sel.PlanID == "" && !sel.PayInFull {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Either plan_id or pay_in_full is required"})
		return
	}

	h.run(c, s, func(ctx context.Context) error {
		return s.ChooseInstalmentPlan(ctx, sel)
	})
}

const (
	challengeCompleted = "completed"
	challengeDeclined  = "declined"
	challengeFailed    = "failed"
)

// challengeRequest is what the host posts once the 3-D Secure flow ends.
// A completed challenge carries the gateway response that closed it.
type challengeRequest struct {
	Status   string            `json:"status" binding:"required,oneof=completed declined failed"`
	Response *payment.Response `json:"response"`
	Message  string            `json:"message"`
}

func (h *SessionHandler) ResolveChallenge(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	st := s.State()
	if st.Phase != checkout.PhaseAwaitingChallenge {
		writeError(c, phaseError(st))
		return
	}

	var out threeds.Outcome
	switch req.Status {
	case challengeCompleted:
		if req.Response == nil || req.Response.State == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A completed challenge needs the gateway response"})
			return
		}
		var cookie string
		if st.Session != nil {
			cookie = st.Session.PaymentCookie
		}
		out = threeds.OutcomeFromResponse(*req.Response, cookie)
	case challengeDeclined:
		out = threeds.Declined{Reason: req.Message}
	case challengeFailed:
		out = threeds.Failed{Message: req.Message}
	}

	var key string
	if st.Challenge != nil {
		key = st.Challenge.Key()
	}
	if err := s.Challenges.Resolve(key, out); err != nil {
		writeError(c, err)
		return
	}
	h.await(c, s)
}

type partialAuthRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept decline"`
}

func (h *SessionHandler) DecidePartialAuth(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req partialAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	op := s.AcceptPartialAuth
	if req.Decision == "decline" {
		op = s.DeclinePartialAuth
	}
	h.run(c, s, op)
}

type googlePayRequest struct {
	PaymentData json.RawMessage `json:"payment_data" binding:"required"`
}

func (h *SessionHandler) AcceptGooglePay(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req googlePayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	h.run(c, s, func(ctx context.Context) error {
		return s.AcceptGooglePay(ctx, string(req.PaymentData))
	})
}

func (h *SessionHandler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.run(c, s, s.Back)
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.run(c, s, s.Cancel)
}

func (h *SessionHandler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.registry.Get(c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return s, true
}

// run starts op detached from the request so a long challenge or a client
// disconnect does not abort the payment. Precondition errors come back
// synchronously; an operation still running after syncWait answers 202.
func (h *SessionHandler) run(c *gin.Context, s *session.Session, op func(context.Context) error) {
	ctx := context.WithoutCancel(c.Request.Context())
	errCh := make(chan error, 1)
	go func() { errCh <- op(ctx) }()

	timer := time.NewTimer(h.syncWait)
	defer timer.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionResponse{ID: s.ID(), State: s.State()})
	case <-timer.C:
		c.JSON(http.StatusAccepted, sessionResponse{ID: s.ID(), State: s.State()})
	}
}

// await answers once the session leaves AWAITING_CHALLENGE or syncWait passes.
func (h *SessionHandler) await(c *gin.Context, s *session.Session) {
	states, stop := s.SubscribeState()
	defer stop()

	timer := time.NewTimer(h.syncWait)
	defer timer.Stop()

	for {
		select {
		case st, ok := <-states:
			if !ok {
				c.JSON(http.StatusOK, sessionResponse{ID: s.ID(), State: s.State()})
				return
			}
			if st.Phase != checkout.PhaseAwaitingChallenge {
				c.JSON(http.StatusOK, sessionResponse{ID: s.ID(), State: st})
				return
			}
		case <-timer.C:
			c.JSON(http.StatusAccepted, sessionResponse{ID: s.ID(), State: s.State()})
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func phaseError(st checkout.State) error {
	if st.Terminal() {
		return checkout.ErrSessionFinished
	}
	return checkout.ErrInvalidPhase
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, payment.ErrInvalidIntent),
		errors.Is(err, payment.ErrInvalidCard),
		errors.Is(err, checkout.ErrMissingAuthCode),
		errors.Is(err, checkout.ErrUnknownPlan):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, checkout.ErrInvalidPhase),
		errors.Is(err, checkout.ErrOperationInProgress),
		errors.Is(err, checkout.ErrSessionFinished),
		errors.Is(err, session.ErrChallengeAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
