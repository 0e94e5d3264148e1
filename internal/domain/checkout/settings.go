package checkout

import "time"

// Settings are fixed for the lifetime of an Orchestrator.
type Settings struct {
	// ShowCancelAlert makes Back ask the host for confirmation instead of cancelling.
	ShowCancelAlert bool
	EffectBuffer    int
	DeliveryTimeout time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		EffectBuffer:    defaultEffectBuffer,
		DeliveryTimeout: 5 * time.Second,
	}
}
