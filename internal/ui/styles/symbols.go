package styles

// Symbols holds the glyph set based on nerdfont configuration
type Symbols struct {
	Cursor      string
	RadioOn     string
	RadioOff    string
	CheckOn     string
	CheckOff    string
	GroupMarker string
}

// Default symbols (plain unicode)
var defaultSymbols = Symbols{
	Cursor:      ">",
	RadioOn:     "(•)",
	RadioOff:    "( )",
	CheckOn:     "[x]",
	CheckOff:    "[ ]",
	GroupMarker: "▸",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Cursor:      "", // nf-fa-chevron_right
	RadioOn:     "", // nf-fa-dot_circle_o
	RadioOff:    "", // nf-fa-circle_o
	CheckOn:     "", // nf-fa-check_square
	CheckOff:    "", // nf-fa-square_o
	GroupMarker: "", // nf-fa-folder_open
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// Mark returns the selection glyph for a row: radio buttons when
// exclusive, checkboxes otherwise.
func Mark(exclusive, checked bool) string {
	switch {
	case exclusive && checked:
		return currentSymbols.RadioOn
	case exclusive:
		return currentSymbols.RadioOff
	case checked:
		return currentSymbols.CheckOn
	default:
		return currentSymbols.CheckOff
	}
}
