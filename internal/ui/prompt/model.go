package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/choice/internal/choice"
	"github.com/raphi011/choice/internal/ui/styles"
)

// DefaultMaxVisible is used when Options.MaxVisible is not positive.
const DefaultMaxVisible = 10

// Options configures the prompt rendering.
type Options struct {
	Indent     string // indent unit per depth level; tabs become two spaces
	MaxVisible int    // rows shown before the list scrolls
}

// terminatedMsg is delivered once the controller has a result, whatever
// ended the prompt.
type terminatedMsg struct{}

// Model is the bubbletea model of a shown choice prompt. All selection
// state lives in the controller; the model owns cursor, scroll and filter.
type Model struct {
	ctrl       *choice.Controller
	prompt     choice.Prompt
	entries    []choice.Entry
	parent     []int // parent row per row, -1 at the root
	indent     string
	maxVisible int

	keys keyMap
	help help.Model

	filter  string
	visible []int         // rows shown, in tree order
	matches map[int][]int // row -> matched rune positions of its label
	cursor  int           // index into visible
	offset  int           // first visible index rendered

	done bool
}

// New creates a model for ctrl, which must already be shown.
func New(ctrl *choice.Controller, opts Options) *Model {
	indent := opts.Indent
	if strings.ContainsRune(indent, '\t') {
		indent = strings.ReplaceAll(indent, "\t", "  ")
	}
	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}

	p := ctrl.Prompt()
	entries := ctrl.Entries()
	m := &Model{
		ctrl:       ctrl,
		prompt:     p,
		entries:    entries,
		parent:     parents(entries),
		indent:     indent,
		maxVisible: maxVisible,
		keys:       newKeyMap(p.Mode),
		help:       help.New(),
	}
	m.applyFilter()
	return m
}

// parents maps every row to the row of its enclosing group.
func parents(entries []choice.Entry) []int {
	out := make([]int, len(entries))
	var stack []int
	for i, e := range entries {
		stack = stack[:e.Depth]
		if e.Depth == 0 {
			out[i] = -1
		} else {
			out[i] = stack[e.Depth-1]
		}
		stack = append(stack, i)
	}
	return out
}

// entrySource implements fuzzy.Source over row labels.
type entrySource []choice.Entry

func (s entrySource) String(i int) string { return label(s[i]) }
func (s entrySource) Len() int            { return len(s) }

func label(e choice.Entry) string {
	if e.Option.Label != "" {
		return e.Option.Label
	}
	return e.Option.ID
}

// Done reports whether the prompt has terminated.
func (m *Model) Done() bool {
	return m.done
}

// Filter returns the current filter text.
func (m *Model) Filter() string {
	return m.filter
}

// CursorRow returns the entry row under the cursor, or -1 if no row is
// visible.
func (m *Model) CursorRow() int {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return -1
	}
	return m.visible[m.cursor]
}

func (m *Model) Init() tea.Cmd {
	return waitTerminated(m.ctrl)
}

// waitTerminated turns the controller's completion into a message, so a
// forced dismissal from the host closes the program.
func waitTerminated(ctrl *choice.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.Done()
		return terminatedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case terminatedMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.SetWidth(msg.Width)
		return m, nil
	case tea.KeyPressMsg:
		if m.done {
			return m, nil
		}
		m.handleKey(msg)
		if m.ctrl.State() == choice.Terminated {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.ctrl.Cancel()
	case key.Matches(msg, m.keys.Cancel):
		if m.filter != "" {
			m.setFilter("")
			return
		}
		m.ctrl.Cancel()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = m.nextSelectable(0, 1)
		m.scroll()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.nextSelectable(len(m.visible)-1, -1)
		m.scroll()
	case key.Matches(msg, m.keys.Pick), key.Matches(msg, m.keys.Toggle):
		if row := m.CursorRow(); row >= 0 {
			_ = m.ctrl.Activate(row)
		}
	case key.Matches(msg, m.keys.Confirm):
		m.ctrl.Confirm()
	case msg.String() == "backspace":
		if m.filter != "" {
			m.setFilter(deleteLastRune(m.filter))
		}
	case msg.String() == "alt+backspace":
		if m.filter != "" {
			m.setFilter(deleteLastWord(m.filter))
		}
	default:
		if text := printable(msg.Text); text != "" {
			m.setFilter(m.filter + text)
		}
	}
}

func (m *Model) setFilter(filter string) {
	m.filter = filter
	m.applyFilter()
}

// applyFilter recomputes the visible rows. A group stays visible while any
// descendant matches, so matches keep their tree context.
func (m *Model) applyFilter() {
	prev := m.CursorRow()

	m.matches = nil
	m.visible = m.visible[:0]
	if m.filter == "" {
		for i := range m.entries {
			m.visible = append(m.visible, i)
		}
	} else {
		keep := make([]bool, len(m.entries))
		m.matches = make(map[int][]int)
		for _, match := range fuzzy.FindFrom(m.filter, entrySource(m.entries)) {
			m.matches[match.Index] = match.MatchedIndexes
			for r := match.Index; r >= 0 && !keep[r]; r = m.parent[r] {
				keep[r] = true
			}
		}
		for i, k := range keep {
			if k {
				m.visible = append(m.visible, i)
			}
		}
	}

	m.cursor = -1
	for i, row := range m.visible {
		if row == prev {
			m.cursor = i
			break
		}
	}
	if m.cursor < 0 || !m.ctrl.Selectable(prev) {
		m.cursor = m.nextSelectable(0, 1)
	}
	m.offset = 0
	m.scroll()
}

// nextSelectable returns the first visible index from start in direction
// dir whose row is selectable. Without one it returns start clamped to the
// visible range.
func (m *Model) nextSelectable(start, dir int) int {
	for i := start; i >= 0 && i < len(m.visible); i += dir {
		if m.ctrl.Selectable(m.visible[i]) {
			return i
		}
	}
	return max(0, min(start, len(m.visible)-1))
}

func (m *Model) moveCursor(dir int) {
	for i := m.cursor + dir; i >= 0 && i < len(m.visible); i += dir {
		if m.ctrl.Selectable(m.visible[i]) {
			m.cursor = i
			m.scroll()
			return
		}
	}
}

// scroll keeps the cursor inside the rendered window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxVisible {
		m.offset = m.cursor - m.maxVisible + 1
	}
	m.offset = max(0, m.offset)
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.prompt.Title != "" {
		b.WriteString(styles.TitleStyle.Render(m.prompt.Title) + "\n")
	}
	if m.prompt.Message != "" {
		b.WriteString(styles.InfoStyle.Render(m.prompt.Message) + "\n")
	}
	if m.filter != "" {
		b.WriteString(styles.MutedStyle.Render("Filter: ") + styles.WarningStyle.Render(m.filter) + "\n")
	}
	if m.prompt.Title != "" || m.prompt.Message != "" || m.filter != "" {
		b.WriteString("\n")
	}

	end := min(m.offset+m.maxVisible, len(m.visible))
	if m.offset > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i == m.cursor) + "\n")
	}
	if end < len(m.visible) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching options") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderRow(row int, atCursor bool) string {
	e := m.entries[row]
	sym := styles.CurrentSymbols()

	cursor := "  "
	if atCursor {
		cursor = styles.AccentStyle.Render(sym.Cursor) + " "
	}

	style := styles.NormalStyle
	var mark string
	switch {
	case e.Group:
		style = styles.GroupStyle
		mark = sym.GroupMarker
	case e.Option.Disabled:
		style = styles.MutedStyle
		mark = styles.Mark(m.prompt.Mode.Exclusive(), false)
	default:
		checked, _ := m.ctrl.IsChecked(row)
		mark = styles.Mark(m.prompt.Mode.Exclusive(), checked)
		if checked {
			mark = styles.SuccessStyle.Render(mark)
		}
		if atCursor {
			style = styles.AccentStyle
		}
	}

	return cursor + e.Indent(m.indent) + mark + " " + m.renderLabel(row, style)
}

// renderLabel highlights the characters matched by the filter.
func (m *Model) renderLabel(row int, style lipgloss.Style) string {
	text := label(m.entries[row])
	idx, ok := m.matches[row]
	if !ok || len(idx) == 0 {
		return style.Render(text)
	}
	return highlight(text, idx, styles.HighlightStyle.Render, style.Render)
}

// highlight renders the runes starting at the matched byte offsets with
// match and everything else with rest.
func highlight(text string, matched []int, match, rest func(...string) string) string {
	at := make(map[int]bool, len(matched))
	for _, i := range matched {
		at[i] = true
	}

	var b strings.Builder
	for i, r := range text {
		if at[i] {
			b.WriteString(match(string(r)))
		} else {
			b.WriteString(rest(string(r)))
		}
	}
	return b.String()
}

// Run shows the prompt on stderr until the controller terminates.
// The TUI renders to stderr so stdout remains available for the result
// (e.g., ids=$(choice show menu.toml) works correctly).
// If the program exits without a result the prompt is dismissed.
func Run(ctrl *choice.Controller, opts Options) error {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	return run(ctrl, opts, os.Stderr, tea.WithColorProfile(profile))
}

// run drives the program on out. Signals are left to the host navigators,
// which dismiss the controller and so end the program with a result.
func run(ctrl *choice.Controller, opts Options, out io.Writer, extra ...tea.ProgramOption) error {
	progOpts := append([]tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	}, extra...)

	_, err := tea.NewProgram(New(ctrl, opts), progOpts...).Run()
	ctrl.Dismiss()
	return runError(err)
}

// runError drops interrupt errors: by the time Run returns the controller
// holds the dismissal result, so the host still has an answer to print.
func runError(err error) error {
	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
