package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/host"
)

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
	}
}

// fruit flattens to a, b (group), b1, b2 (disabled), c.
func fruit() []choice.Option {
	return []choice.Option{
		{ID: "a", Label: "Apple"},
		{ID: "b", Label: "Citrus", Items: []choice.Option{
			{ID: "b1", Label: "Lemon"},
			{ID: "b2", Label: "Lime", Disabled: true},
		}},
		{ID: "c", Label: "Cherry", Selected: true},
	}
}

func newModel(t *testing.T, p choice.Prompt, opts Options) (*choice.Controller, *Model) {
	t.Helper()
	ctrl := choice.New(nil)
	if err := ctrl.Show(context.Background(), p); err != nil {
		t.Fatalf("Show: %v", err)
	}
	return ctrl, New(ctrl, opts)
}

// press sends keys in order and returns the command of the last one.
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyPress(k))
	}
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(string(r)))
	}
}

func result(t *testing.T, ctrl *choice.Controller) []string {
	t.Helper()
	ids, ok := ctrl.Result()
	if !ok {
		t.Fatal("controller has no result")
	}
	return ids
}

func viewText(m *Model) string {
	return ansi.Strip(m.render())
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mode        choice.Mode
		keys        []string
		wantIDs     []string
		wantOutcome choice.Outcome
	}{
		{"single enter picks first row", choice.Single, []string{"enter"}, []string{"a"}, choice.Confirmed},
		{"single space picks", choice.Single, []string{"down", "space"}, []string{"b1"}, choice.Confirmed},
		{"menu skips group and disabled rows", choice.Menu, []string{"down", "down", "enter"}, []string{"c"}, choice.Confirmed},
		{"multiple toggle and confirm", choice.Multiple, []string{"space", "down", "space", "enter"}, []string{"a", "b1"}, choice.Confirmed},
		{"multiple toggle twice unchecks", choice.Multiple, []string{"space", "space", "down", "space", "enter"}, []string{"b1"}, choice.Confirmed},
		{"multiple confirm without checks returns defaults", choice.Multiple, []string{"enter"}, []string{"c"}, choice.Confirmed},
		{"esc cancels", choice.Multiple, []string{"space", "esc"}, []string{"c"}, choice.Cancelled},
		{"left is back", choice.Single, []string{"left"}, []string{"c"}, choice.Cancelled},
		{"ctrl+c cancels", choice.Menu, []string{"ctrl+c"}, []string{"c"}, choice.Cancelled},
		{"end then enter", choice.Single, []string{"end", "enter"}, []string{"c"}, choice.Confirmed},
		{"home after end", choice.Single, []string{"end", "home", "space"}, []string{"a"}, choice.Confirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl, m := newModel(t, choice.Prompt{Mode: tt.mode, Options: fruit()}, Options{})

			cmd := press(m, tt.keys...)
			if cmd == nil {
				t.Error("expected quit command after termination")
			}
			if !m.Done() {
				t.Error("model should be done")
			}
			if got := result(t, ctrl); !slices.Equal(got, tt.wantIDs) {
				t.Errorf("result = %v, want %v", got, tt.wantIDs)
			}
			if got, _ := ctrl.Outcome(); got != tt.wantOutcome {
				t.Errorf("outcome = %v, want %v", got, tt.wantOutcome)
			}
		})
	}
}

func TestModel_MultipleSpaceDoesNotConfirm(t *testing.T) {
	t.Parallel()

	ctrl, m := newModel(t, choice.Prompt{Mode: choice.Multiple, Options: fruit()}, Options{})
	if cmd := press(m, "space", "down", "space"); cmd != nil {
		t.Error("toggling should not quit")
	}
	if ctrl.State() != choice.Shown {
		t.Errorf("state = %v, want shown", ctrl.State())
	}
	if got := ctrl.CheckedRows(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("checked rows = %v, want [0 2]", got)
	}
}

func TestModel_CursorSkipsUnselectable(t *testing.T) {
	t.Parallel()

	_, m := newModel(t, choice.Prompt{Mode: choice.Multiple, Options: fruit()}, Options{})

	steps := []struct {
		key  string
		want int
	}{
		{"down", 2}, // b is a group
		{"down", 4}, // b2 is disabled
		{"down", 4}, // stays on the last selectable row
		{"up", 2},
		{"up", 0},
		{"up", 0},
	}
	if got := m.CursorRow(); got != 0 {
		t.Fatalf("initial cursor row = %d, want 0", got)
	}
	for i, s := range steps {
		press(m, s.key)
		if got := m.CursorRow(); got != s.want {
			t.Errorf("step %d (%s): cursor row = %d, want %d", i, s.key, got, s.want)
		}
	}
}

func TestModel_Filter(t *testing.T) {
	t.Parallel()

	ctrl, m := newModel(t, choice.Prompt{Mode: choice.Single, Options: fruit()}, Options{})

	typeText(m, "Lem")
	if m.Filter() != "Lem" {
		t.Fatalf("filter = %q, want Lem", m.Filter())
	}
	if !slices.Equal(m.visible, []int{1, 2}) {
		t.Errorf("visible = %v, want group and match [1 2]", m.visible)
	}
	if got := m.CursorRow(); got != 2 {
		t.Errorf("cursor row = %d, want 2", got)
	}
	view := viewText(m)
	if !strings.Contains(view, "Filter: Lem") || !strings.Contains(view, "Citrus") {
		t.Errorf("view missing filter line or group context:\n%s", view)
	}
	if strings.Contains(view, "Apple") {
		t.Errorf("view shows a filtered-out row:\n%s", view)
	}

	press(m, "backspace")
	if m.Filter() != "Le" {
		t.Errorf("filter after backspace = %q, want Le", m.Filter())
	}

	// esc clears the filter first and keeps the prompt open.
	press(m, "esc")
	if m.Filter() != "" || ctrl.State() != choice.Shown {
		t.Fatalf("filter = %q state = %v, want cleared and shown", m.Filter(), ctrl.State())
	}
	if len(m.visible) != 5 {
		t.Errorf("visible = %v, want all rows", m.visible)
	}
	if got := m.CursorRow(); got != 2 {
		t.Errorf("cursor row = %d, want it kept on 2", got)
	}

	press(m, "enter")
	if got := result(t, ctrl); !slices.Equal(got, []string{"b1"}) {
		t.Errorf("result = %v, want [b1]", got)
	}
}

func TestModel_FilterNoMatches(t *testing.T) {
	t.Parallel()

	ctrl, m := newModel(t, choice.Prompt{Mode: choice.Single, Options: fruit()}, Options{})

	typeText(m, "zzz")
	if got := m.CursorRow(); got != -1 {
		t.Errorf("cursor row = %d, want -1", got)
	}
	if cmd := press(m, "enter"); cmd != nil {
		t.Error("enter without rows should not quit")
	}
	if ctrl.State() != choice.Shown {
		t.Errorf("state = %v, want shown", ctrl.State())
	}
	if !strings.Contains(viewText(m), "No matching options") {
		t.Error("expected empty-result hint")
	}
}

func TestModel_ForcedDismiss(t *testing.T) {
	t.Parallel()

	ctrl, m := newModel(t, choice.Prompt{Mode: choice.Multiple, Options: fruit()}, Options{})
	press(m, "space")

	wait := m.Init()
	ctrl.Dismiss()

	msg := wait()
	if _, ok := msg.(terminatedMsg); !ok {
		t.Fatalf("Init command returned %T, want terminatedMsg", msg)
	}
	if _, cmd := m.Update(msg); cmd == nil {
		t.Error("expected quit command")
	}
	if !m.Done() {
		t.Error("model should be done")
	}
	if got := result(t, ctrl); !slices.Equal(got, []string{"c"}) {
		t.Errorf("result = %v, want defaults [c]", got)
	}
	if view := m.render(); view != "" {
		t.Errorf("view after done = %q, want empty", view)
	}
	if cmd := press(m, "enter"); cmd != nil {
		t.Error("keys after done should be ignored")
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("title and message", func(t *testing.T) {
		t.Parallel()
		_, m := newModel(t, choice.Prompt{
			Title:   "Pick a fruit",
			Message: "Only one",
			Mode:    choice.Single,
			Options: fruit(),
		}, Options{})
		view := viewText(m)
		if !strings.Contains(view, "Pick a fruit") || !strings.Contains(view, "Only one") {
			t.Errorf("view missing title or message:\n%s", view)
		}
	})

	t.Run("hidden when empty", func(t *testing.T) {
		t.Parallel()
		_, m := newModel(t, choice.Prompt{Mode: choice.Single, Options: fruit()}, Options{})
		first := strings.SplitN(viewText(m), "\n", 2)[0]
		if !strings.Contains(first, "Apple") {
			t.Errorf("first line = %q, want the first row", first)
		}
	})

	t.Run("radio glyphs in exclusive modes", func(t *testing.T) {
		t.Parallel()
		_, m := newModel(t, choice.Prompt{Mode: choice.Menu, Options: fruit()}, Options{})
		view := viewText(m)
		if !strings.Contains(view, "( ) Apple") {
			t.Errorf("expected radio glyph:\n%s", view)
		}
		if strings.Contains(view, "[ ]") {
			t.Errorf("unexpected checkbox glyph:\n%s", view)
		}
	})

	t.Run("checkboxes in multiple mode", func(t *testing.T) {
		t.Parallel()
		_, m := newModel(t, choice.Prompt{Mode: choice.Multiple, Options: fruit()}, Options{Indent: "\t"})
		press(m, "space")
		view := viewText(m)
		if !strings.Contains(view, "> [x] Apple") {
			t.Errorf("expected checked cursor row:\n%s", view)
		}
		if !strings.Contains(view, "    [ ] Lemon") {
			t.Errorf("expected indented child row:\n%s", view)
		}
		if !strings.Contains(view, "Citrus") {
			t.Errorf("expected group header:\n%s", view)
		}
	})

	t.Run("scroll markers", func(t *testing.T) {
		t.Parallel()
		_, m := newModel(t, choice.Prompt{Mode: choice.Single, Options: fruit()}, Options{MaxVisible: 2})
		view := viewText(m)
		if !strings.Contains(view, "more below") || strings.Contains(view, "more above") {
			t.Errorf("unexpected scroll markers at top:\n%s", view)
		}
		press(m, "end")
		view = viewText(m)
		if !strings.Contains(view, "more above") || strings.Contains(view, "Apple") {
			t.Errorf("unexpected scroll markers at bottom:\n%s", view)
		}
	})
}

func TestParents(t *testing.T) {
	t.Parallel()

	entries := choice.Flatten([]choice.Option{
		{ID: "g", Items: []choice.Option{
			{ID: "h", Items: []choice.Option{{ID: "x"}}},
			{ID: "y"},
		}},
		{ID: "z"},
	})
	want := []int{-1, 0, 1, 0, -1}
	if got := parents(entries); !slices.Equal(got, want) {
		t.Errorf("parents = %v, want %v", got, want)
	}
}

func TestKeyMap_ModeBindings(t *testing.T) {
	t.Parallel()

	single := newKeyMap(choice.Single)
	if !single.Pick.Enabled() || single.Toggle.Enabled() || single.Confirm.Enabled() {
		t.Error("exclusive mode should enable only pick")
	}

	multi := newKeyMap(choice.Multiple)
	if multi.Pick.Enabled() || !multi.Toggle.Enabled() || !multi.Confirm.Enabled() {
		t.Error("multiple mode should enable toggle and confirm")
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	mark := func(s ...string) string { return "[" + strings.Join(s, "") + "]" }
	plain := func(s ...string) string { return strings.Join(s, "") }

	tests := []struct {
		text    string
		matched []int
		want    string
	}{
		{"Lemon", []int{0, 1}, "[L][e]mon"},
		{"Äpfel", []int{2, 3}, "Ä[p][f]el"}, // offsets are bytes, Ä takes two
		{"Äpfel", []int{0}, "[Ä]pfel"},
		{"Kiwi", nil, "Kiwi"},
	}

	for _, tt := range tests {
		if got := highlight(tt.text, tt.matched, mark, plain); got != tt.want {
			t.Errorf("highlight(%q, %v) = %q, want %q", tt.text, tt.matched, got, tt.want)
		}
	}
}

func TestModel_FilterHighlightsNonASCII(t *testing.T) {
	t.Parallel()

	_, m := newModel(t, choice.Prompt{Mode: choice.Single, Options: []choice.Option{
		{ID: "a", Label: "Äpfel"},
		{ID: "b", Label: "Birne"},
	}}, Options{})

	typeText(m, "pf")
	if !slices.Equal(m.visible, []int{0}) {
		t.Fatalf("visible = %v, want [0]", m.visible)
	}
	if !strings.Contains(viewText(m), "Äpfel") {
		t.Errorf("view lost the label:\n%s", viewText(m))
	}
}

func TestRunError(t *testing.T) {
	t.Parallel()

	other := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"interrupted", tea.ErrInterrupted, nil},
		{"killed", tea.ErrProgramKilled, nil},
		{"wrapped interrupt", fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrInterrupted), nil},
		{"other", other, other},
	}

	for _, tt := range tests {
		if got := runError(tt.err); !errors.Is(got, tt.want) || (tt.want == nil && got != nil) {
			t.Errorf("%s: runError = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRun_DismissedByHost(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ctrl := choice.New(nil).WithNavigator(host.Context{Ctx: ctx})
	p := choice.Prompt{Mode: choice.Single, Options: fruit()}
	if err := ctrl.Show(context.Background(), p); err != nil {
		t.Fatalf("Show: %v", err)
	}

	// The host navigates away, as a SIGINT through the root context does.
	cancel()

	errc := make(chan error, 1)
	go func() { errc <- run(ctrl, Options{}, io.Discard, tea.WithInput(nil)) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("program did not exit after dismissal")
	}

	if got := result(t, ctrl); !slices.Equal(got, []string{"c"}) {
		t.Errorf("result = %v, want defaults [c]", got)
	}
	if got, _ := ctrl.Outcome(); got != choice.ForcedDismiss {
		t.Errorf("outcome = %v, want dismissed", got)
	}
}
