package choice

import "fmt"

// Outcome is the way a prompt terminated.
type Outcome int

const (
	// Confirmed is an explicit commit (Multiple) or a pick (Single/Menu).
	Confirmed Outcome = iota
	// Cancelled is an explicit cancel, close or back-navigation.
	Cancelled
	// ForcedDismiss is a termination caused by the host navigating away.
	ForcedDismiss
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	case ForcedDismiss:
		return "dismissed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Resolve computes the identifiers handed to the host for outcome.
//
// Confirmed returns the checked rows in row order, falling back to the
// default selection when nothing is checked. Cancelled and ForcedDismiss
// always return the default selection. The result is never nil.
func Resolve(options []Option, entries []Entry, sel *Selection, outcome Outcome) []string {
	if outcome == Confirmed && sel != nil {
		rows := sel.CheckedRows()
		if len(rows) > 0 {
			ids := make([]string, 0, len(rows))
			for _, row := range rows {
				if row < len(entries) {
					ids = append(ids, entries[row].Option.ID)
				}
			}
			return ids
		}
	}
	return DefaultSelection(options)
}

// DefaultSelection returns the identifiers of every pre-selected option
// in the tree, in pre-order.
func DefaultSelection(options []Option) []string {
	return appendSelected([]string{}, options)
}

func appendSelected(ids []string, options []Option) []string {
	for _, o := range options {
		if o.Selected {
			ids = append(ids, o.ID)
		}
		ids = appendSelected(ids, o.Items)
	}
	return ids
}
