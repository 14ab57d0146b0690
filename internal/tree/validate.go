package tree

import (
	"errors"
	"fmt"

	"github.com/raphi011/choice/internal/choice"
)

// Validate reports identifiers that occur more than once in the tree.
// Results are looked up by identifier, so duplicates make them ambiguous.
func Validate(options []choice.Option) error {
	seen := make(map[string]bool)
	var errs []error
	for _, e := range choice.Flatten(options) {
		id := e.Option.ID
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate option id %q", id))
			continue
		}
		seen[id] = true
	}
	return errors.Join(errs...)
}
