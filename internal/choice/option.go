package choice

import (
	"fmt"
	"strings"
)

// Option is one node of a choice tree as supplied by the host.
// A node with Items is a group header and is never selectable itself.
type Option struct {
	ID       string   `json:"id" toml:"id" yaml:"id"`
	Label    string   `json:"label" toml:"label" yaml:"label"`
	Disabled bool     `json:"disabled,omitempty" toml:"disabled" yaml:"disabled"`
	Selected bool     `json:"selected,omitempty" toml:"selected" yaml:"selected"` // pre-selected by the host
	Items    []Option `json:"items,omitempty" toml:"items" yaml:"items"`
}

// IsGroup returns true if the option has children.
func (o Option) IsGroup() bool {
	return len(o.Items) > 0
}

// Count returns the total number of nodes in the forest.
func Count(options []Option) int {
	n := 0
	for _, o := range options {
		n += 1 + Count(o.Items)
	}
	return n
}

// Mode is the interaction mode of a prompt.
type Mode int

const (
	// Single allows exactly one pick; picking a row ends the prompt.
	Single Mode = iota
	// Menu behaves like Single. Only the surrounding chrome differs.
	Menu
	// Multiple allows any number of checked rows and an explicit confirm.
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Menu:
		return "menu"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Exclusive reports whether at most one row may be checked and a pick
// terminates the prompt.
func (m Mode) Exclusive() bool {
	return m != Multiple
}

// ParseMode parses "single", "menu" or "multiple" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "menu":
		return Menu, nil
	case "multiple", "multi":
		return Multiple, nil
	default:
		return Single, fmt.Errorf("invalid mode %q: must be \"single\", \"menu\" or \"multiple\"", s)
	}
}
