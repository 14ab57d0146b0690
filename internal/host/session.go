// Package host provides navigation sources that force a shown prompt to
// close: an in-process session, OS signals, context cancellation and
// changes to the option file.
//
// Every type here satisfies [choice.Navigator].
package host

import (
	"sync"

	"github.com/raphi011/choice/internal/choice"
)

var (
	_ choice.Navigator = (*Session)(nil)
	_ choice.Navigator = (*Signals)(nil)
	_ choice.Navigator = Context{}
	_ choice.Navigator = (*FileWatcher)(nil)
	_ choice.Navigator = Multi(nil)
)

// Session is an in-process navigation notifier. Prompts subscribe to it
// and Navigate tells all of them that the page they belong to is gone.
type Session struct {
	mu        sync.Mutex
	listeners map[uint64]func()
	next      uint64
}

// NewSession creates a session without listeners.
func NewSession() *Session {
	return &Session{listeners: make(map[uint64]func())}
}

// Subscribe registers fn until the returned func is called.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Navigate notifies every current listener. Listeners run outside the
// session lock, so they may unsubscribe while being notified.
func (s *Session) Navigate() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of active subscriptions.
func (s *Session) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
