package kafka

import (
	"time"

	"CheckoutSDK/internal/domain/checkout"

	"github.com/shopspring/decimal"
)

func sessionOutcome() checkout.SessionOutcome {
	return checkout.SessionOutcome{
		SessionID:    "sess-1",
		OutletID:     "outlet-1",
		Amount:       decimal.RequireFromString("100.00"),
		CurrencyCode: "AED",
		Outcome:      checkout.Succeeded(checkout.OutcomeCaptured),
		OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}
