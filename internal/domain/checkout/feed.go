package checkout

import (
	"log/slog"
	"sync"
)

// StateFeed broadcasts the latest State. A subscriber gets the current state
// on subscription and afterwards only the newest value; intermediate states
// are skipped for slow readers.
type StateFeed struct {
	mu      sync.Mutex
	current State
	subs    map[int]chan State
	next    int
	closed  bool
}

func NewStateFeed(initial State) *StateFeed {
	return &StateFeed{current: initial, subs: make(map[int]chan State)}
}

func (f *StateFeed) Publish(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.current = s
	for _, ch := range f.subs {
		replace(ch, s)
	}
}

// Subscribe returns a channel holding the current state. The channel is
// closed by the returned cancel func or when the feed closes.
func (f *StateFeed) Subscribe() (<-chan State, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan State, 1)
	ch <- f.current
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	id := f.next
	f.next++
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscription. The last published state stays readable.
func (f *StateFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}

// replace drops a value nobody read yet and puts s in its place. Callers hold
// the feed lock, so they are the only writer.
func replace(ch chan State, s State) {
	select {
	case <-ch:
	default:
	}
	ch <- s
}

const defaultEffectBuffer = 16

// EffectBus fans effects out to active subscribers without blocking. An
// effect emitted with no subscriber is lost.
type EffectBus struct {
	mu     sync.Mutex
	subs   map[int]chan Effect
	next   int
	buffer int
	closed bool
}

func NewEffectBus(buffer int) *EffectBus {
	if buffer <= 0 {
		buffer = defaultEffectBuffer
	}
	return &EffectBus{subs: make(map[int]chan Effect), buffer: buffer}
}

// Emit returns how many subscribers received e.
func (b *EffectBus) Emit(e Effect) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0
	}

	delivered := 0
	for id, ch := range b.subs {
		select {
		case ch <- e:
			delivered++
		default:
			slog.Warn("Dropping effect for slow subscriber", slog.String("effect", e.Name()), slog.Int("subscriber", id))
		}
	}
	return delivered
}

func (b *EffectBus) Subscribe() (<-chan Effect, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Effect, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.next
	b.next++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *EffectBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
