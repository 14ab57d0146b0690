// Package config handles loading and validation of choice configuration.
//
// Configuration is read from ~/.config/choice/config.toml with environment
// variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (applied by the CLI)
//   - CHOICE_MODE, CHOICE_THEME, CHOICE_INDENT, CHOICE_MAX_VISIBLE env vars
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - mode: Mode used when the option file sets none (default: "single")
//   - indent: Indent unit per nesting level (default: three tabs)
//   - max_visible: Rows shown before the list scrolls (default: 10)
//   - copy: Copy results to the clipboard
//   - watch: Dismiss the prompt when the option file changes (default: true)
//
// # Theme
//
// The [theme] section selects a preset family and optionally overrides
// single colors:
//
//	[theme]
//	name = "nord"
//	mode = "auto"
//	accent = "#ff79c6"
package config
