// Package threeds turns an AWAIT_3DS gateway response into a challenge
// descriptor and models the result of running that challenge.
package threeds

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"CheckoutSDK/internal/domain/payment"
)

// ErrMalformedChallengeData is returned when neither challenge version can be
// built from the response.
var ErrMalformedChallengeData = errors.New("malformed 3-D Secure challenge data")

type Version int

const (
	VersionOne Version = 1
	VersionTwo Version = 2
)

// Descriptor carries exactly one of V1 or V2, matching Version.
type Descriptor struct {
	Version Version `json:"version"`
	V1      *V1     `json:"v1,omitempty"`
	V2      *V2     `json:"v2,omitempty"`
}

type V1 struct {
	ACSURL     string `json:"acs_url"`
	PaReq      string `json:"pa_req"`
	MD         string `json:"md"`
	GatewayURL string `json:"gateway_url"`
}

type V2 struct {
	MethodURL             string `json:"method_url,omitempty"`
	MethodData            string `json:"method_data,omitempty"`
	MethodNotificationURL string `json:"method_notification_url,omitempty"`
	ServerTransID         string `json:"server_trans_id"`
	DirectoryServerID     string `json:"directory_server_id,omitempty"`
	MessageVersion        string `json:"message_version,omitempty"`
	AuthenticationURL     string `json:"authentication_url"`
	ChallengeResponseURL  string `json:"challenge_response_url,omitempty"`
	PaymentCookie         string `json:"payment_cookie"`
	OrderURL              string `json:"order_url"`
	OutletRef             string `json:"outlet_ref,omitempty"`
	OrderRef              string `json:"order_ref,omitempty"`
	PaymentRef            string `json:"payment_ref,omitempty"`
}

// Key identifies the challenge: the 3DS server transaction id for v2, the
// merchant data for v1. It is empty for a zero Descriptor.
func (d Descriptor) Key() string {
	switch {
	case d.V2 != nil:
		return d.V2.ServerTransID
	case d.V1 != nil:
		return d.V1.MD
	default:
		return ""
	}
}

// Build derives the challenge descriptor from resp. A response carrying v2
// fields always yields a v2 descriptor or an error, never a v1 fallback.
func Build(resp payment.Response, orderURL, paymentCookie string) (Descriptor, error) {
	if resp.IsThreeDSecureTwo() {
		return buildV2(resp, orderURL, paymentCookie)
	}
	return buildV1(resp)
}

func buildV2(resp payment.Response, orderURL, paymentCookie string) (Descriptor, error) {
	tds := resp.ThreeDS2
	v2 := &V2{
		MethodURL:             tds.MethodURL,
		MethodData:            tds.MethodData,
		MethodNotificationURL: tds.MethodNotificationURL,
		ServerTransID:         tds.ServerTransID,
		DirectoryServerID:     tds.DirectoryServerID,
		MessageVersion:        tds.MessageVersion,
		AuthenticationURL:     resp.Links.ThreeDSAuthentications.URL(),
		ChallengeResponseURL:  resp.Links.ThreeDSChallengeResponse.URL(),
		PaymentCookie:         paymentCookie,
		OrderURL:              orderURL,
		OutletRef:             resp.OutletID,
		OrderRef:              resp.OrderReference,
		PaymentRef:            resp.Reference,
	}

	missing := missingFields(map[string]string{
		"threeDSServerTransID":    v2.ServerTransID,
		"cnp:3ds2-authentication": v2.AuthenticationURL,
		"payment cookie":          v2.PaymentCookie,
		"order url":               v2.OrderURL,
	})
	if len(missing) > 0 {
		return Descriptor{}, fmt.Errorf("%w: v2 missing %s", ErrMalformedChallengeData, strings.Join(missing, ", "))
	}
	return Descriptor{Version: VersionTwo, V2: v2}, nil
}

func buildV1(resp payment.Response) (Descriptor, error) {
	if resp.ThreeDS == nil {
		return Descriptor{}, fmt.Errorf("%w: response carries no challenge data", ErrMalformedChallengeData)
	}
	v1 := &V1{
		ACSURL:     resp.ThreeDS.ACSURL,
		PaReq:      resp.ThreeDS.PaReq,
		MD:         resp.ThreeDS.MD,
		GatewayURL: resp.Links.ThreeDS.URL(),
	}
	if v1.GatewayURL == "" && resp.Links.Self.URL() != "" {
		v1.GatewayURL = strings.TrimSuffix(resp.Links.Self.URL(), "/") + "/3ds"
	}

	missing := missingFields(map[string]string{
		"acsUrl":      v1.ACSURL,
		"acsPaReq":    v1.PaReq,
		"acsMd":       v1.MD,
		"gateway url": v1.GatewayURL,
	})
	if len(missing) > 0 {
		return Descriptor{}, fmt.Errorf("%w: v1 missing %s", ErrMalformedChallengeData, strings.Join(missing, ", "))
	}
	return Descriptor{Version: VersionOne, V1: v1}, nil
}

func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return missing
}
