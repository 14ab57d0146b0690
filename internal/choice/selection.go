package choice

import (
	"errors"
	"fmt"
)

// ErrRowOutOfRange is returned when a row index does not address a
// flattened entry.
var ErrRowOutOfRange = errors.New("row out of range")

// Selection tracks which rows of a flattened tree are checked.
//
// All rows start unchecked; pre-selected options only affect the fallback
// result computed by Resolve. Group and disabled rows are never checked,
// and in exclusive modes at most one row is checked at a time.
type Selection struct {
	mode       Mode
	selectable []bool
	checked    []bool
}

// NewSelection creates an empty selection over entries.
func NewSelection(entries []Entry, mode Mode) *Selection {
	selectable := make([]bool, len(entries))
	for i, e := range entries {
		selectable[i] = e.Selectable()
	}
	return &Selection{
		mode:       mode,
		selectable: selectable,
		checked:    make([]bool, len(entries)),
	}
}

// Mode returns the interaction mode.
func (s *Selection) Mode() Mode { return s.mode }

// Len returns the number of rows.
func (s *Selection) Len() int { return len(s.checked) }

// Selectable reports whether row can be toggled. Out-of-range rows are
// not selectable.
func (s *Selection) Selectable(row int) bool {
	return s.inRange(row) && s.selectable[row]
}

// Toggle applies a row activation.
//
// Group and disabled rows are ignored. In exclusive modes the row becomes
// the only checked row; in Multiple mode only that row flips. The returned
// bool reports whether the call changed anything it was allowed to touch.
func (s *Selection) Toggle(row int) (bool, error) {
	if !s.inRange(row) {
		return false, fmt.Errorf("toggle row %d of %d: %w", row, len(s.checked), ErrRowOutOfRange)
	}
	if !s.selectable[row] {
		return false, nil
	}

	if s.mode.Exclusive() {
		for i := range s.checked {
			s.checked[i] = false
		}
		s.checked[row] = true
		return true, nil
	}

	s.checked[row] = !s.checked[row]
	return true, nil
}

// IsChecked reports whether row is checked.
func (s *Selection) IsChecked(row int) (bool, error) {
	if !s.inRange(row) {
		return false, fmt.Errorf("check row %d of %d: %w", row, len(s.checked), ErrRowOutOfRange)
	}
	return s.checked[row], nil
}

// CheckedRows returns the checked row indices in ascending order.
func (s *Selection) CheckedRows() []int {
	var rows []int
	for i, c := range s.checked {
		if c {
			rows = append(rows, i)
		}
	}
	return rows
}

func (s *Selection) inRange(row int) bool {
	return row >= 0 && row < len(s.checked)
}
