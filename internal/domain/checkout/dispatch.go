package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/internal/domain/threeds"
)

func (o *Orchestrator) submit(ctx context.Context, session payment.AuthSession, card payment.CardDetails, planID string) {
	req := payment.CardPaymentRequest{
		PaymentURL: o.intent.CardPaymentURL,
		Session:    session,
		Card:       card,
		PayerIP:    o.payerIP(ctx),
		PlanID:     planID,
	}
	slog.InfoContext(ctx, "Submitting card payment", slog.String("card", card.Masked()), slog.String("plan_id", planID))
	o.dispatch(ctx, session, payment.ResultOf(o.deps.Submitter.SubmitCardPayment(ctx, req)))
}

// dispatch routes every card payment result, including partial auth follow-ups.
func (o *Orchestrator) dispatch(ctx context.Context, session payment.AuthSession, result payment.CardPaymentResult) {
	switch r := result.(type) {
	case payment.CardPaymentError:
		o.finish(ctx, outcomeForError(r.Err))
	case payment.CardPaymentSuccess:
		o.dispatchResponse(ctx, session, r.Response)
	default:
		slog.ErrorContext(ctx, "Unsupported card payment result", slog.String("type", fmt.Sprintf("%T", result)))
		o.finish(ctx, GenericError(MessageUnsupportedCardPayment))
	}
}

func outcomeForError(err error) Outcome {
	switch {
	case err == nil:
		return Failed(MessagePaymentFailed)
	case errors.Is(err, partialauth.ErrPartialAuthDeclined):
		return Failed(MessagePartialAuthDeclined)
	case errors.Is(err, partialauth.ErrMalformedDescriptor):
		return GenericError(err.Error())
	default:
		return Failed(err.Error())
	}
}

func (o *Orchestrator) dispatchResponse(ctx context.Context, session payment.AuthSession, resp payment.Response) {
	switch resp.State {
	case payment.StateAwait3DS:
		o.challenge(ctx, session, resp)
	case payment.StateAwaitingPartialAuth:
		o.awaitPartialAuth(ctx, partialauth.FromResponse(resp, session.PaymentCookie))
	default:
		o.finishForState(ctx, resp.State, resp.SummaryText())
	}
}

// finishForState ends the session for a state reported by the gateway. States
// that would need another round trip count as unknown here.
func (o *Orchestrator) finishForState(ctx context.Context, state payment.State, summary string) {
	if out, ok := outcomeForState(state); ok {
		o.finish(ctx, out)
		return
	}
	if state == payment.StateFailed {
		o.finish(ctx, paymentFailed(summary))
		return
	}
	slog.WarnContext(ctx, "Gateway returned unhandled payment state",
		slog.Any("error", fmt.Errorf("%w: %s", payment.ErrUnknownState, state)))
	o.finish(ctx, unknownState(state))
}

func (o *Orchestrator) challenge(ctx context.Context, session payment.AuthSession, resp payment.Response) {
	descriptor, err := threeds.Build(resp, session.OrderURL, session.PaymentCookie)
	if err != nil {
		o.finish(ctx, Failed(err.Error()))
		return
	}
	if !o.advance(ctx, PhaseAwaitingChallenge, func(s *State) { s.Challenge = &descriptor }) {
		return
	}
	o.effects.Emit(ChallengeRequired{Descriptor: descriptor})

	slog.InfoContext(ctx, "Running 3-D Secure challenge", slog.Int("version", int(descriptor.Version)))
	o.resolveChallenge(ctx, session, o.deps.Challenges.Run(ctx, descriptor))
}

func (o *Orchestrator) resolveChallenge(ctx context.Context, session payment.AuthSession, outcome threeds.Outcome) {
	switch out := outcome.(type) {
	case threeds.Approved:
		o.finishForState(ctx, out.State, "")
	case threeds.Declined:
		msg := MessageChallengeDeclined
		if out.Reason != "" {
			msg += ": " + out.Reason
		}
		o.finish(ctx, Failed(msg))
	case threeds.Failed:
		o.finish(ctx, Failed(out.Message))
	case threeds.PartialAuthRequired:
		descriptor := out.Descriptor
		if descriptor.PaymentCookie == "" {
			descriptor.PaymentCookie = session.PaymentCookie
		}
		o.awaitPartialAuth(ctx, descriptor)
	default:
		o.finish(ctx, Failed(MessageChallengeNoOutcome))
	}
}

func (o *Orchestrator) awaitPartialAuth(ctx context.Context, descriptor partialauth.Descriptor) {
	if err := descriptor.Validate(); err != nil {
		o.finish(ctx, GenericError(err.Error()))
		return
	}
	updated := o.advance(ctx, PhaseAwaitingPartialAuthDecision, func(s *State) {
		s.Challenge = nil
		s.PartialAuth = &descriptor
	})
	if updated {
		o.effects.Emit(PartialAuthRequired{Descriptor: descriptor})
	}
}

func (o *Orchestrator) eligiblePlans(ctx context.Context, card payment.CardDetails, session payment.AuthSession) []payment.InstalmentPlan {
	if o.deps.Plans == nil || o.intent.SelfURL == "" {
		return nil
	}
	plans, err := o.deps.Plans.EligiblePlans(ctx, payment.PlanQuery{
		CardNumber:  card.PAN,
		AccessToken: session.AccessToken,
		SelfURL:     o.intent.SelfURL,
	})
	if err != nil {
		slog.WarnContext(ctx, "Instalment eligibility check failed, paying in full", slog.Any("error", err))
		return nil
	}
	return plans
}

func (o *Orchestrator) payerIP(ctx context.Context) string {
	if o.deps.PayerIP == nil {
		return ""
	}
	ip, err := o.deps.PayerIP.PayerIP(ctx, o.intent.PayPageURL)
	if err != nil {
		slog.WarnContext(ctx, "Payer IP lookup failed, submitting without it", slog.Any("error", err))
		return ""
	}
	return ip
}

func (o *Orchestrator) walletConfig(ctx context.Context, session payment.AuthSession) *payment.WalletConfig {
	if o.deps.Wallets == nil {
		return nil
	}
	cfg, err := o.deps.Wallets.GooglePayConfig(ctx, o.intent.GooglePayConfigURL, session.AccessToken)
	if err != nil {
		slog.WarnContext(ctx, "Google Pay config unavailable", slog.Any("error", err))
		return nil
	}
	return cfg
}
