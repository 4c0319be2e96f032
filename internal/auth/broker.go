package auth

import "sync"

// Transition is a change of the authentication state of one login session.
type Transition struct {
	Authenticated bool
	UserID        string
	Token         string
	Profile       Profile
}

// Broker relays auth transitions to subscribers. Publish is synchronous:
// when it returns, every subscriber has seen the transition.
type Broker struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Transition)
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]func(Transition)),
	}
}

// Subscribe registers fn and returns the func that removes it.
func (b *Broker) Subscribe(fn func(Transition)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broker) Publish(t Transition) {
	b.mu.RLock()
	subs := make([]func(Transition), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	// called outside the lock, so subscribers may (un)subscribe
	for _, fn := range subs {
		fn(t)
	}
}

func (b *Broker) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
