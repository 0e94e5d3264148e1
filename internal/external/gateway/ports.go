package gateway

import (
	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/domain/partialauth"
)

var (
	_ checkout.Authenticator          = (*Client)(nil)
	_ checkout.CardPaymentSubmitter   = (*Client)(nil)
	_ checkout.InstalmentPlanProvider = (*Client)(nil)
	_ checkout.PayerIPResolver        = (*Client)(nil)
	_ checkout.WalletConfigProvider   = (*Client)(nil)
	_ checkout.GooglePayAcceptor      = (*Client)(nil)
	_ partialauth.LinkFollower        = (*Client)(nil)
)
