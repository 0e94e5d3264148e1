package api

import (
	"CheckoutSDK/internal/api/handlers"
	"CheckoutSDK/pkg/health"
	"CheckoutSDK/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	sessions       *handlers.SessionHandler
	outcomes       *handlers.OutcomeHandler
	healthRegistry *health.Registry
}

// NewRouter accepts a nil outcomes handler when no outcome index is configured.
func NewRouter(sessions *handlers.SessionHandler, outcomes *handlers.OutcomeHandler, healthRegistry *health.Registry) *Router {
	return &Router{sessions: sessions, outcomes: outcomes, healthRegistry: healthRegistry}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/sessions", r.sessions.Create)
	s := engine.Group("/sessions/:session_id")
	{
		s.GET("", r.sessions.Get)
		s.GET("/events", r.sessions.Events)
		s.POST("/authorize", r.sessions.Authorize)
		s.POST("/card", r.sessions.SubmitCard)
		s.POST("/plans", r.sessions.ChoosePlan)
		s.POST("/challenge", r.sessions.ResolveChallenge)
		s.POST("/partial-auth", r.sessions.DecidePartialAuth)
		s.POST("/google-pay", r.sessions.AcceptGooglePay)
		s.POST("/back", r.sessions.Back)
		s.POST("/cancel", r.sessions.Cancel)
	}

	if r.outcomes != nil {
		engine.GET("/outcomes", r.outcomes.List)
	}
}
