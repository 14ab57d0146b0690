package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/choice/internal/choice"
)

// Valid enum values for configuration fields.
var (
	ValidModes      = []string{"single", "menu", "multiple"}
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// validate checks every field that has a restricted value set.
func (c *Config) validate() error {
	if c.Mode != "" {
		if _, err := choice.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("invalid mode %q: must be %s", c.Mode, formatOptions(ValidModes))
		}
	}
	if c.MaxVisible < 1 {
		return fmt.Errorf("invalid max_visible %d: must be at least 1", c.MaxVisible)
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	return validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
