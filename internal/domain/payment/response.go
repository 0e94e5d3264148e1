package payment

import "github.com/shopspring/decimal"

// Response is the gateway's answer to a card, partial-auth or challenge submission.
type Response struct {
	State          State         `json:"state"`
	Reference      string        `json:"reference,omitempty"`
	OutletID       string        `json:"outletId,omitempty"`
	OrderReference string        `json:"orderReference,omitempty"`
	Links          Links         `json:"_links"`
	Amount         *Amount       `json:"amount,omitempty"`
	AuthResponse   *AuthResponse `json:"authResponse,omitempty"`
	ThreeDS        *ThreeDSOne   `json:"3ds,omitempty"`
	ThreeDS2       *ThreeDSTwo   `json:"3ds2,omitempty"`
}

type Links struct {
	Self                     *Href `json:"self,omitempty"`
	ThreeDS                  *Href `json:"cnp:3ds,omitempty"`
	ThreeDSAuthentications   *Href `json:"cnp:3ds2-authentication,omitempty"`
	ThreeDSChallengeResponse *Href `json:"cnp:3ds2-challenge-response,omitempty"`
	PartialAuthAccept        *Href `json:"payment:partial-auth-accept,omitempty"`
	PartialAuthDecline       *Href `json:"payment:partial-auth-decline,omitempty"`
}

type Href struct {
	Href string `json:"href"`
}

// URL returns the link target, empty when the link is absent.
func (h *Href) URL() string {
	if h == nil {
		return ""
	}
	return h.Href
}

type Amount struct {
	CurrencyCode string          `json:"currencyCode"`
	Value        decimal.Decimal `json:"value"`
}

type AuthResponse struct {
	AuthorizationCode string  `json:"authorizationCode,omitempty"`
	Success           bool    `json:"success"`
	ResultCode        string  `json:"resultCode,omitempty"`
	ResultMessage     string  `json:"resultMessage,omitempty"`
	AmountAuthorized  *Amount `json:"amountAuthorized,omitempty"`
}

// ThreeDSOne carries the ACS redirect data of a 3-D Secure v1 challenge.
type ThreeDSOne struct {
	ACSURL      string `json:"acsUrl,omitempty"`
	PaReq       string `json:"acsPaReq,omitempty"`
	MD          string `json:"acsMd,omitempty"`
	SummaryText string `json:"summaryText,omitempty"`
}

type ThreeDSTwo struct {
	MethodURL             string `json:"threeDSMethodURL,omitempty"`
	MethodData            string `json:"threeDSMethodData,omitempty"`
	MethodNotificationURL string `json:"threeDSMethodNotificationURL,omitempty"`
	ServerTransID         string `json:"threeDSServerTransID,omitempty"`
	DirectoryServerID     string `json:"directoryServerID,omitempty"`
	MessageVersion        string `json:"messageVersion,omitempty"`
}

// IsThreeDSecureTwo reports whether the response asks for a v2 challenge.
func (r Response) IsThreeDSecureTwo() bool {
	return r.ThreeDS2 != nil && (r.ThreeDS2.MethodURL != "" || r.ThreeDS2.ServerTransID != "")
}

// SummaryText is the gateway's human readable reason, if any.
func (r Response) SummaryText() string {
	if r.ThreeDS != nil && r.ThreeDS.SummaryText != "" {
		return r.ThreeDS.SummaryText
	}
	if r.AuthResponse != nil {
		return r.AuthResponse.ResultMessage
	}
	return ""
}
