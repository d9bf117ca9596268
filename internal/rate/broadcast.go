package rate

import "sync"

// Broadcaster fans a value out to subscribers. Each subscriber holds at most one pending
// value: a slow reader skips intermediate updates but always ends up with the latest one.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	latest *T
}

func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = &v
	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
			// drop the stale pending value and replace it
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Subscribe returns a channel primed with the latest value (if any) and a cancel func.
// Cancel must be called to release the subscription; it closes the channel and is safe to call twice.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan T, 1)
	if b.latest != nil {
		ch <- *b.latest
	}
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[uint64]chan T)}
}
