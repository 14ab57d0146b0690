package choice

import "strings"

// DefaultIndent is the indent unit emitted per nesting level.
const DefaultIndent = "\t\t\t"

// Entry is one display row of a flattened choice tree.
// Its index in the slice returned by Flatten is the row position used by
// Selection.
type Entry struct {
	Option Option
	Depth  int  // 0 for root-level options
	Group  bool // true if Option has children; never selectable
}

// Indent returns unit repeated Depth times.
func (e Entry) Indent(unit string) string {
	if e.Depth <= 0 {
		return ""
	}
	return strings.Repeat(unit, e.Depth)
}

// Selectable reports whether the row can ever be checked.
func (e Entry) Selectable() bool {
	return !e.Group && !e.Option.Disabled
}

// Flatten converts an option forest into display rows, depth-first and
// pre-order: every option is emitted before its children, siblings keep
// their input order.
func Flatten(options []Option) []Entry {
	entries := make([]Entry, 0, Count(options))
	return flatten(entries, options, 0)
}

func flatten(entries []Entry, options []Option, depth int) []Entry {
	for _, o := range options {
		entries = append(entries, Entry{
			Option: o,
			Depth:  depth,
			Group:  o.IsGroup(),
		})
		if o.IsGroup() {
			entries = flatten(entries, o.Items, depth+1)
		}
	}
	return entries
}

// RowOf returns the row of the first entry with the given identifier,
// or -1.
func RowOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.Option.ID == id {
			return i
		}
	}
	return -1
}
