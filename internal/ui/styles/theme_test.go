package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/choice/internal/config"
)

func withBackground(t *testing.T, dark bool) {
	t.Helper()
	prev := hasDarkBackground
	hasDarkBackground = func() bool { return dark }
	t.Cleanup(func() {
		hasDarkBackground = prev
		Init(config.ThemeConfig{Mode: "dark"})
	})
}

func TestInit_DefaultTheme(t *testing.T) {
	withBackground(t, true)
	Init(config.ThemeConfig{})

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestInit_PresetTheme(t *testing.T) {
	withBackground(t, true)

	tests := []struct {
		preset        string
		mode          string
		expectedColor string
	}{
		{"dracula", "dark", "#bd93f9"},
		{"nord", "dark", "#88c0d0"},
		{"nord", "light", "#5e81ac"},
		{"gruvbox", "", "#83a598"},
		{"catppuccin", "light", "#1e66f5"},
		{"dracula", "light", "#bd93f9"}, // no light variant, falls back to dark
	}

	for _, tt := range tests {
		t.Run(tt.preset+"/"+tt.mode, func(t *testing.T) {
			Init(config.ThemeConfig{Name: tt.preset, Mode: tt.mode})
			if got := Current().Primary; got != lipgloss.Color(tt.expectedColor) {
				t.Errorf("primary = %v, want %s", got, tt.expectedColor)
			}
		})
	}
}

func TestInit_AutoLightBackground(t *testing.T) {
	withBackground(t, false)

	Init(config.ThemeConfig{Name: "gruvbox"})
	if got := Current().Primary; got != lipgloss.Color("#076678") {
		t.Errorf("primary = %v, want gruvbox light", got)
	}
}

func TestInit_PresetWithOverride(t *testing.T) {
	withBackground(t, true)

	Init(config.ThemeConfig{
		Name:   "dracula",
		Accent: "#123456",
	})

	theme := Current()
	if theme.Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected dracula primary color, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("#123456") {
		t.Errorf("expected custom accent color #123456, got %v", theme.Accent)
	}
}

func TestInit_SetsNerdfont(t *testing.T) {
	withBackground(t, true)
	t.Cleanup(func() { SetNerdfont(false) })

	Init(config.ThemeConfig{Nerdfont: true})
	if !NerdfontEnabled() {
		t.Error("expected nerdfont to be enabled")
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("dracula") == nil {
		t.Error("expected dracula preset to exist")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetNames(t *testing.T) {
	for _, name := range PresetNames() {
		if GetPreset(name) == nil {
			t.Errorf("preset %q listed but not defined", name)
		}
	}
}

func TestApplyTheme_UpdatesGlobalStyles(t *testing.T) {
	withBackground(t, true)
	Init(config.ThemeConfig{Name: "dracula"})

	if Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected Primary to be updated to dracula color, got %v", Primary)
	}
	if TitleStyle.GetForeground() != lipgloss.Color("#bd93f9") {
		t.Errorf("expected TitleStyle foreground to be updated, got %v",
			TitleStyle.GetForeground())
	}
	if ErrorStyle.GetForeground() != lipgloss.Color("#ff5555") {
		t.Errorf("expected ErrorStyle foreground to be updated, got %v",
			ErrorStyle.GetForeground())
	}
}
