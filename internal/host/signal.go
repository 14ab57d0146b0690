package host

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/raphi011/choice/internal/choice"
)

// Signals reports navigation when the process receives one of its
// signals.
type Signals struct {
	signals []os.Signal
}

// NewSignals creates a navigator for sig.
func NewSignals(sig ...os.Signal) *Signals {
	return &Signals{signals: sig}
}

// Subscribe calls fn at most once, on the first matching signal received
// before the returned func is called.
func (n *Signals) Subscribe(fn func()) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, n.signals...)
	done := make(chan struct{})

	go func() {
		select {
		case <-ch:
			fn()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}

// Context reports navigation when its context is done.
type Context struct {
	Ctx context.Context
}

// Subscribe calls fn once Ctx is done, unless the returned func is
// called first.
func (n Context) Subscribe(fn func()) func() {
	stop := context.AfterFunc(n.Ctx, fn)
	return func() { stop() }
}

// Multi fans several navigators into one.
type Multi []choice.Navigator

// Subscribe registers fn with every navigator.
func (m Multi) Subscribe(fn func()) func() {
	stops := make([]func(), 0, len(m))
	for _, n := range m {
		if n != nil {
			stops = append(stops, n.Subscribe(fn))
		}
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
