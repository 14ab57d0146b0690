package choice

import (
	"context"
	"slices"
	"sync"
)

// Completion is a result handle that can be resolved at most once.
// Resolving it again is a no-op. The zero value is not usable; use
// NewCompletion.
type Completion struct {
	once   sync.Once
	done   chan struct{}
	result []string
}

// NewCompletion creates an unresolved completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve stores ids and releases waiters. It returns false if the
// completion was already resolved.
func (c *Completion) Resolve(ids []string) bool {
	resolved := false
	c.once.Do(func() {
		c.result = slices.Clone(ids)
		if c.result == nil {
			c.result = []string{}
		}
		close(c.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel that is closed once the completion is resolved.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Result returns a copy of the result and whether it has been resolved.
func (c *Completion) Result() ([]string, bool) {
	select {
	case <-c.done:
		return slices.Clone(c.result), true
	default:
		return nil, false
	}
}

// Wait blocks until the completion is resolved or ctx is done.
func (c *Completion) Wait(ctx context.Context) ([]string, error) {
	select {
	case <-c.done:
		return slices.Clone(c.result), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
