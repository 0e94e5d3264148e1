// Package checkout drives a single card checkout from authorization to exactly
// one terminal outcome.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"CheckoutSDK/internal/domain/partialauth"
	"CheckoutSDK/internal/domain/payment"
	"CheckoutSDK/pkg/logger"
	"CheckoutSDK/pkg/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

const tracerName = "CheckoutSDK/internal/domain/checkout"

// Deps are the ports the orchestrator talks to. Plans, PayerIP, Wallets,
// GooglePay and Sink are optional.
type Deps struct {
	Authenticator Authenticator
	Submitter     CardPaymentSubmitter
	Challenges    ChallengeExecutor
	PartialAuth   PartialAuthResolver
	Plans         InstalmentPlanProvider
	PayerIP       PayerIPResolver
	Wallets       WalletConfigProvider
	GooglePay     GooglePayAcceptor
	Sink          OutcomeSink
}

func (d Deps) validate() error {
	var missing []string
	if d.Authenticator == nil {
		missing = append(missing, "authenticator")
	}
	if d.Submitter == nil {
		missing = append(missing, "card payment submitter")
	}
	if d.Challenges == nil {
		missing = append(missing, "challenge executor")
	}
	if d.PartialAuth == nil {
		missing = append(missing, "partial auth resolver")
	}
	if len(missing) > 0 {
		return fmt.Errorf("checkout: missing dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Orchestrator owns one checkout session. Operations that call the gateway are
// serialized; a second one started while another runs gets ErrOperationInProgress.
type Orchestrator struct {
	id       string
	intent   payment.Intent
	deps     Deps
	settings Settings
	tracer   trace.Tracer

	inflight *semaphore.Weighted

	mu       sync.Mutex
	state    State
	card     *payment.CardDetails
	cancelOp context.CancelFunc

	states  *StateFeed
	effects *EffectBus
	done    chan struct{}
}

func New(intent payment.Intent, deps Deps, settings Settings) (*Orchestrator, error) {
	intent, err := payment.NewIntent(intent)
	if err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Sink == nil {
		deps.Sink = nopSink{}
	}
	if settings.DeliveryTimeout <= 0 {
		settings.DeliveryTimeout = DefaultSettings().DeliveryTimeout
	}

	initial := State{Phase: PhaseIdle}
	return &Orchestrator{
		id:       uuid.NewString(),
		intent:   intent,
		deps:     deps,
		settings: settings,
		tracer:   otel.Tracer(tracerName),
		inflight: semaphore.NewWeighted(1),
		state:    initial,
		states:   NewStateFeed(initial),
		effects:  NewEffectBus(settings.EffectBuffer),
		done:     make(chan struct{}),
	}, nil
}

func (o *Orchestrator) ID() string {
	return o.id
}

func (o *Orchestrator) Intent() payment.Intent {
	return o.intent
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SubscribeState replays the current state and then follows the latest one.
func (o *Orchestrator) SubscribeState() (<-chan State, func()) {
	return o.states.Subscribe()
}

// SubscribeEffects must be called before the operation whose effects the
// caller wants to see.
func (o *Orchestrator) SubscribeEffects() (<-chan Effect, func()) {
	return o.effects.Subscribe()
}

// Done is closed once the terminal outcome is set.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.done
}

func (o *Orchestrator) Outcome() (Outcome, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Outcome == nil {
		return Outcome{}, false
	}
	return *o.state.Outcome, true
}

// Authorize exchanges the pay page code for an auth session.
func (o *Orchestrator) Authorize(ctx context.Context) error {
	ctx = logger.WithSessionID(ctx, o.id)
	code := o.intent.AuthCode()
	if code == "" {
		if o.State().Terminal() {
			return ErrSessionFinished
		}
		slog.WarnContext(ctx, "Authorize skipped, pay page url has no code")
		return ErrMissingAuthCode
	}

	ctx, end, err := o.begin(ctx, "Authorize")
	if err != nil {
		return err
	}
	defer end()

	if err := o.transition(ctx, PhaseAuthorizing, nil, PhaseIdle); err != nil {
		return err
	}

	session, err := o.deps.Authenticator.Authenticate(ctx, o.intent.AuthURL, code)
	if err != nil {
		o.finish(ctx, Failed(err.Error()))
		return nil
	}

	walletConfig := o.walletConfig(ctx, session)
	amount := o.intent.OrderAmount()
	o.advance(ctx, PhaseAuthorized, func(s *State) {
		s.Session = &session
		s.SupportedCards = o.intent.SupportedCards()
		s.OrderAmount = &amount
		s.WalletConfig = walletConfig
		s.ShowWallets = walletConfig != nil && walletConfig.CanUseGooglePay
	})
	return nil
}

// SubmitCard pays with card. When the card is eligible for instalment plans the
// session stops at PRESENTING_INSTALMENT_PLANS and nothing is submitted yet.
func (o *Orchestrator) SubmitCard(ctx context.Context, card payment.CardDetails) error {
	if err := card.Validate(); err != nil {
		return err
	}

	ctx, end, err := o.begin(logger.WithSessionID(ctx, o.id), "SubmitCard")
	if err != nil {
		return err
	}
	defer end()

	var session payment.AuthSession
	err = o.transition(ctx, PhaseSubmitting, func(s *State) {
		if s.Session != nil {
			session = *s.Session
		}
	}, PhaseAuthorized)
	if err != nil {
		return err
	}

	if plans := o.eligiblePlans(ctx, card, session); len(plans) > 0 {
		presented := o.advance(ctx, PhasePresentingInstalmentPlans, func(s *State) {
			s.Plans = plans
			o.card = &card
		})
		if presented {
			o.effects.Emit(ShowInstalmentPlans{Plans: plans, OrderAmount: o.intent.OrderAmount()})
		}
		return nil
	}

	o.submit(ctx, session, card, "")
	return nil
}

// ChooseInstalmentPlan resumes a submission suspended on plan selection.
func (o *Orchestrator) ChooseInstalmentPlan(ctx context.Context, selection payment.PlanSelection) error {
	ctx, end, err := o.begin(logger.WithSessionID(ctx, o.id), "ChooseInstalmentPlan")
	if err != nil {
		return err
	}
	defer end()

	st, err := o.require(PhasePresentingInstalmentPlans)
	if err != nil {
		return err
	}
	if !selection.PayInFull && !slices.ContainsFunc(st.Plans, func(p payment.InstalmentPlan) bool {
		return p.ID == selection.PlanID
	}) {
		return fmt.Errorf("%w: %q", ErrUnknownPlan, selection.PlanID)
	}

	var (
		session payment.AuthSession
		card    payment.CardDetails
	)
	err = o.transition(ctx, PhaseSubmitting, func(s *State) {
		if s.Session != nil {
			session = *s.Session
		}
		if o.card != nil {
			card = *o.card
		}
		s.Plans = nil
		o.card = nil
	}, PhasePresentingInstalmentPlans)
	if err != nil {
		return err
	}

	planID := selection.PlanID
	if selection.PayInFull {
		planID = ""
	}
	o.submit(ctx, session, card, planID)
	return nil
}

func (o *Orchestrator) AcceptPartialAuth(ctx context.Context) error {
	return o.decidePartialAuth(ctx, "AcceptPartialAuth", o.deps.PartialAuth.Accept)
}

// DeclinePartialAuth always ends the session as failed.
func (o *Orchestrator) DeclinePartialAuth(ctx context.Context) error {
	return o.decidePartialAuth(ctx, "DeclinePartialAuth", o.deps.PartialAuth.Decline)
}

func (o *Orchestrator) decidePartialAuth(
	ctx context.Context,
	op string,
	decide func(context.Context, partialauth.Descriptor) payment.CardPaymentResult,
) error {
	ctx, end, err := o.begin(logger.WithSessionID(ctx, o.id), op)
	if err != nil {
		return err
	}
	defer end()

	var (
		session    payment.AuthSession
		descriptor partialauth.Descriptor
	)
	err = o.transition(ctx, PhaseSubmitting, func(s *State) {
		if s.Session != nil {
			session = *s.Session
		}
		if s.PartialAuth != nil {
			descriptor = *s.PartialAuth
		}
		s.PartialAuth = nil
	}, PhaseAwaitingPartialAuthDecision)
	if err != nil {
		return err
	}

	o.dispatch(ctx, session, decide(ctx, descriptor))
	return nil
}

// AcceptGooglePay needs an authorized session and a Google Pay URL on the
// intent. Without them the session fails at once and no call is made.
func (o *Orchestrator) AcceptGooglePay(ctx context.Context, paymentData string) error {
	ctx = logger.WithSessionID(ctx, o.id)
	st := o.State()
	if st.Terminal() {
		return ErrSessionFinished
	}
	if st.Phase != PhaseAuthorized || st.Session == nil || o.intent.GooglePayURL == "" || o.deps.GooglePay == nil {
		if err := o.abort(ctx, Failed(MessageGooglePayPrecondition)); err != nil && !errors.Is(err, ErrSessionFinished) {
			return err
		}
		return nil
	}

	ctx, end, err := o.begin(ctx, "AcceptGooglePay")
	if err != nil {
		return err
	}
	defer end()

	var session payment.AuthSession
	err = o.transition(ctx, PhaseSubmitting, func(s *State) {
		if s.Session != nil {
			session = *s.Session
		}
	}, PhaseAuthorized)
	if err != nil {
		return err
	}

	if err := o.deps.GooglePay.AcceptGooglePay(ctx, o.intent.GooglePayURL, session.AccessToken, paymentData); err != nil {
		o.finish(ctx, Failed(fmt.Sprintf("%s: %s", MessageGooglePayAcceptFailed, err.Error())))
		return nil
	}
	o.finish(ctx, Succeeded(OutcomeCaptured))
	return nil
}

// Back is the payer navigating away. With ShowCancelAlert the host is asked
// to confirm and must call Cancel itself.
func (o *Orchestrator) Back(ctx context.Context) error {
	if !o.settings.ShowCancelAlert {
		return o.Cancel(ctx)
	}
	if o.State().Terminal() {
		return ErrSessionFinished
	}
	o.effects.Emit(CancelConfirmationRequired{})
	return nil
}

// Cancel ends the session as failed without waiting for the running
// operation, whose context is cancelled and whose result is discarded.
func (o *Orchestrator) Cancel(ctx context.Context) error {
	return o.abort(logger.WithSessionID(ctx, o.id), Failed(MessageCancelled))
}

// abort finishes the session with out and cancels the in-flight operation.
func (o *Orchestrator) abort(ctx context.Context, out Outcome) error {
	o.mu.Lock()
	if o.state.Terminal() {
		o.mu.Unlock()
		return ErrSessionFinished
	}
	cancelOp := o.cancelOp
	o.mu.Unlock()

	if !o.finish(ctx, out) {
		return ErrSessionFinished
	}
	if cancelOp != nil {
		cancelOp()
	}
	return nil
}

// begin claims the single operation slot and returns the operation context.
func (o *Orchestrator) begin(ctx context.Context, op string) (context.Context, func(), error) {
	if o.State().Terminal() {
		return nil, nil, ErrSessionFinished
	}
	if !o.inflight.TryAcquire(1) {
		return nil, nil, ErrOperationInProgress
	}

	ctx, cancel := context.WithCancel(ctx)
	ctx, span := o.tracer.Start(ctx, "checkout."+op,
		trace.WithAttributes(attribute.String("checkout.session_id", o.id)))

	o.mu.Lock()
	o.cancelOp = cancel
	o.mu.Unlock()

	return ctx, func() {
		o.mu.Lock()
		o.cancelOp = nil
		phase := o.state.Phase
		o.mu.Unlock()

		span.SetAttributes(attribute.String("checkout.phase", string(phase)))
		span.End()
		cancel()
		o.inflight.Release(1)
	}, nil
}

func (o *Orchestrator) require(phase Phase) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch {
	case o.state.Terminal():
		return State{}, ErrSessionFinished
	case o.state.Phase != phase:
		return State{}, fmt.Errorf("%w: %s", ErrInvalidPhase, o.state.Phase)
	}
	return o.state, nil
}

// transition moves to next if the current phase is one of from (any phase
// when from is empty). update runs under the lock before the state is published.
func (o *Orchestrator) transition(ctx context.Context, next Phase, update func(*State), from ...Phase) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	cur := o.state.Phase
	if cur == PhaseTerminal {
		return ErrSessionFinished
	}
	if (len(from) > 0 && !slices.Contains(from, cur)) || !cur.CanMoveTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPhase, cur, next)
	}

	o.state.Phase = next
	if update != nil {
		update(&o.state)
	}
	metrics.CheckoutTransitions.WithLabelValues(string(cur), string(next)).Inc()
	slog.DebugContext(ctx, "Checkout transition", slog.String("from", string(cur)), slog.String("to", string(next)))
	o.states.Publish(o.state)
	return nil
}

// advance applies a transition caused by a gateway result. A result arriving
// after the session finished is dropped.
func (o *Orchestrator) advance(ctx context.Context, next Phase, update func(*State)) bool {
	err := o.transition(ctx, next, update)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrSessionFinished):
		slog.InfoContext(ctx, "Discarding late result for finished session", slog.String("phase", string(next)))
	default:
		slog.ErrorContext(ctx, "Unexpected checkout transition", slog.Any("error", err))
		o.finish(ctx, GenericError(err.Error()))
	}
	return false
}

// finish sets the terminal outcome once. Later calls report false.
func (o *Orchestrator) finish(ctx context.Context, out Outcome) bool {
	o.mu.Lock()
	prev := o.state.Phase
	if prev == PhaseTerminal {
		o.mu.Unlock()
		slog.InfoContext(ctx, "Discarding outcome for finished session", slog.String("outcome", out.String()))
		return false
	}

	o.state = State{Phase: PhaseTerminal, Outcome: &out}
	o.card = nil
	o.states.Publish(o.state)
	o.effects.Emit(Finished{Outcome: out})
	o.states.Close()
	o.effects.Close()
	close(o.done)
	o.mu.Unlock()

	metrics.CheckoutTransitions.WithLabelValues(string(prev), string(PhaseTerminal)).Inc()
	metrics.CheckoutOutcomes.WithLabelValues(string(out.Kind)).Inc()
	if out.Successful() {
		slog.InfoContext(ctx, "Checkout finished", slog.String("outcome", out.String()), slog.String("from", string(prev)))
	} else {
		slog.WarnContext(ctx, "Checkout failed", slog.String("outcome", out.String()), slog.String("from", string(prev)))
	}

	o.deliver(ctx, out)
	return true
}

func (o *Orchestrator) deliver(ctx context.Context, out Outcome) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.settings.DeliveryTimeout)
	defer cancel()

	err := o.deps.Sink.Deliver(ctx, SessionOutcome{
		SessionID:    o.id,
		OutletID:     o.intent.OutletID,
		Amount:       o.intent.Amount,
		CurrencyCode: o.intent.CurrencyCode,
		Outcome:      out,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Outcome delivery failed", slog.Any("error", err))
	}
}
