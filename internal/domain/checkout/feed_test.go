package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFeed_ReplaysLatest(t *testing.T) {
	// given
	feed := NewStateFeed(State{Phase: PhaseIdle})
	ch, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	// when
	feed.Publish(State{Phase: PhaseAuthorizing})
	feed.Publish(State{Phase: PhaseAuthorized})
	feed.Publish(State{Phase: PhaseSubmitting})

	// then
	assert.Equal(t, PhaseSubmitting, (<-ch).Phase)
	select {
	case s := <-ch:
		t.Fatalf("unexpected extra state %s", s.Phase)
	default:
	}
}

func TestStateFeed_NewSubscriberGetsCurrent(t *testing.T) {
	feed := NewStateFeed(State{Phase: PhaseIdle})
	feed.Publish(State{Phase: PhaseAuthorized})

	ch, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	assert.Equal(t, PhaseAuthorized, (<-ch).Phase)
}

func TestStateFeed_Close(t *testing.T) {
	feed := NewStateFeed(State{Phase: PhaseIdle})
	ch, unsubscribe := feed.Subscribe()
	<-ch

	feed.Close()
	feed.Publish(State{Phase: PhaseSubmitting})
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	late, _ := feed.Subscribe()
	s, open := <-late
	require.True(t, open)
	assert.Equal(t, PhaseIdle, s.Phase)
	_, open = <-late
	assert.False(t, open)
}

func TestEffectBus_LostWithoutSubscriber(t *testing.T) {
	// given
	bus := NewEffectBus(4)

	// when
	delivered := bus.Emit(CancelConfirmationRequired{})
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	// then
	assert.Zero(t, delivered)
	select {
	case e := <-ch:
		t.Fatalf("unexpected effect %s", e.Name())
	default:
	}
}

func TestEffectBus_FansOutOnce(t *testing.T) {
	bus := NewEffectBus(4)
	first, unsubscribeFirst := bus.Subscribe()
	second, unsubscribeSecond := bus.Subscribe()
	defer unsubscribeFirst()
	defer unsubscribeSecond()

	assert.Equal(t, 2, bus.Emit(Finished{Outcome: Failed("x")}))

	assert.Equal(t, Finished{Outcome: Failed("x")}, <-first)
	assert.Equal(t, Finished{Outcome: Failed("x")}, <-second)
	assert.Empty(t, first)
}

func TestEffectBus_DropsForFullSubscriber(t *testing.T) {
	bus := NewEffectBus(1)
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	assert.Equal(t, 1, bus.Emit(CancelConfirmationRequired{}))
	assert.Equal(t, 0, bus.Emit(CancelConfirmationRequired{}))
	assert.Len(t, ch, 1)
}

func TestPhase_CanMoveTo(t *testing.T) {
	assert.True(t, PhaseIdle.CanMoveTo(PhaseAuthorizing))
	assert.True(t, PhaseSubmitting.CanMoveTo(PhaseAwaitingChallenge))
	assert.True(t, PhaseAwaitingChallenge.CanMoveTo(PhaseAwaitingPartialAuthDecision))
	assert.False(t, PhaseIdle.CanMoveTo(PhaseSubmitting))
	assert.False(t, PhaseTerminal.CanMoveTo(PhaseIdle))
	assert.False(t, PhaseAwaitingChallenge.CanMoveTo(PhaseSubmitting))
}
