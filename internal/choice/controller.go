package choice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/raphi011/choice/internal/log"
)

var (
	// ErrAlreadyShown is returned when Show is called on a controller that
	// has left the Idle state. Controllers are single-use.
	ErrAlreadyShown = errors.New("prompt already shown")

	// ErrNotShown is returned when a row is activated before Show.
	ErrNotShown = errors.New("prompt not shown")
)

// Navigator is the host collaborator that reports navigation away from
// the page owning the prompt. Subscribe registers fn and returns a func
// that removes the registration again. fn may be called from any
// goroutine, any number of times.
type Navigator interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Delegate receives the result of a prompt. It is called exactly once
// per Controller.
type Delegate func(ids []string)

// Prompt is what the host asks to show.
type Prompt struct {
	Title   string
	Message string
	Mode    Mode
	Options []Option
}

// State is the lifecycle state of a Controller.
type State int

const (
	Idle State = iota
	Shown
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Shown:
		return "shown"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller drives one prompt from Show to termination.
//
// The first terminating event (a pick in Single/Menu mode, Confirm in
// Multiple mode, Cancel, or a navigation notification) resolves the
// result, calls the delegate and releases the navigator subscription.
// Every later event is ignored.
type Controller struct {
	id         string
	delegate   Delegate
	navigator  Navigator
	completion *Completion
	logger     *log.Logger

	mu          sync.Mutex
	state       State
	prompt      Prompt
	entries     []Entry
	sel         *Selection
	outcome     Outcome
	unsubscribe func()
}

// New creates an idle controller reporting to delegate. A nil delegate
// is allowed; the result is still available through Result and Wait.
func New(delegate Delegate) *Controller {
	return &Controller{
		id:         uuid.NewString(),
		delegate:   delegate,
		completion: NewCompletion(),
		logger:     log.FromContext(context.Background()),
	}
}

// WithNavigator sets the host navigation collaborator. It must be called
// before Show.
func (c *Controller) WithNavigator(n Navigator) *Controller {
	c.navigator = n
	return c
}

// ID returns the controller's instance identifier.
func (c *Controller) ID() string { return c.id }

// Show flattens the prompt's options, starts a fresh selection and
// subscribes to the navigator.
func (c *Controller) Show(ctx context.Context, p Prompt) error {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return ErrAlreadyShown
	}
	c.logger = log.FromContext(ctx)
	c.prompt = p
	c.entries = Flatten(p.Options)
	c.sel = NewSelection(c.entries, p.Mode)
	c.state = Shown
	c.mu.Unlock()

	c.logger.Debug("prompt shown", "id", c.id, "mode", p.Mode, "rows", len(c.entries))

	if c.navigator == nil {
		return nil
	}

	// Subscribe outside the lock: a navigator may notify synchronously.
	unsubscribe := c.navigator.Subscribe(c.Dismiss)

	c.mu.Lock()
	if c.state == Terminated {
		c.mu.Unlock()
		unsubscribe()
		return nil
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Activate applies a user activation of row. In Single and Menu mode a
// pick of a selectable row terminates the prompt as Confirmed.
// Activations after termination are ignored.
func (c *Controller) Activate(row int) error {
	c.mu.Lock()
	switch c.state {
	case Idle:
		c.mu.Unlock()
		return ErrNotShown
	case Terminated:
		c.mu.Unlock()
		return nil
	}

	changed, err := c.sel.Toggle(row)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.logger.Debug("row activated", "id", c.id, "row", row, "changed", changed)

	if changed && c.prompt.Mode.Exclusive() {
		finish := c.terminateLocked(Confirmed)
		c.mu.Unlock()
		finish()
		return nil
	}
	c.mu.Unlock()
	return nil
}

// Confirm commits the checked rows. Only Multiple mode has a confirm
// step; in the exclusive modes the call is ignored.
func (c *Controller) Confirm() {
	c.mu.Lock()
	if c.state != Shown || c.prompt.Mode.Exclusive() {
		c.mu.Unlock()
		return
	}
	finish := c.terminateLocked(Confirmed)
	c.mu.Unlock()
	finish()
}

// Cancel closes the prompt, discarding in-progress changes.
func (c *Controller) Cancel() {
	c.terminate(Cancelled)
}

// Dismiss terminates the prompt because the host navigated away.
func (c *Controller) Dismiss() {
	c.terminate(ForcedDismiss)
}

func (c *Controller) terminate(outcome Outcome) {
	c.mu.Lock()
	if c.state != Shown {
		c.mu.Unlock()
		return
	}
	finish := c.terminateLocked(outcome)
	c.mu.Unlock()
	finish()
}

// terminateLocked moves to Terminated and resolves the result. The
// returned func notifies the delegate and must run after c.mu is released.
func (c *Controller) terminateLocked(outcome Outcome) func() {
	c.state = Terminated
	c.outcome = outcome
	ids := Resolve(c.prompt.Options, c.entries, c.sel, outcome)
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil

	return func() {
		c.completion.Resolve(ids)
		c.logger.Debug("prompt terminated", "id", c.id, "outcome", outcome, "result", ids)
		if c.delegate != nil {
			c.delegate(slices.Clone(ids))
		}
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Prompt returns the prompt passed to Show.
func (c *Controller) Prompt() Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt
}

// Entries returns a copy of the flattened rows. Nil before Show.
func (c *Controller) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// IsChecked reports whether row is checked.
func (c *Controller) IsChecked(row int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel == nil {
		return false, ErrNotShown
	}
	return c.sel.IsChecked(row)
}

// CheckedRows returns the checked rows in ascending order.
func (c *Controller) CheckedRows() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel == nil {
		return nil
	}
	return c.sel.CheckedRows()
}

// Selectable reports whether row can be checked.
func (c *Controller) Selectable(row int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel != nil && c.sel.Selectable(row)
}

// Outcome returns how the prompt terminated. The bool is false while the
// prompt has not terminated.
func (c *Controller) Outcome() (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome, c.state == Terminated
}

// Done returns a channel closed once the result is available.
func (c *Controller) Done() <-chan struct{} {
	return c.completion.Done()
}

// Result returns the resolved identifiers once the prompt terminated.
func (c *Controller) Result() ([]string, bool) {
	return c.completion.Result()
}

// Wait blocks until the prompt terminated or ctx is done.
func (c *Controller) Wait(ctx context.Context) ([]string, error) {
	return c.completion.Wait(ctx)
}
