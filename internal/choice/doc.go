// Package choice implements the selection engine behind a choice prompt.
//
// A host supplies a tree of [Option] values. The engine flattens it into
// display rows, tracks which rows the user checked and computes the
// identifiers handed back when the prompt ends.
//
// # Data Flow
//
//	[]Option -> Flatten -> []Entry -> Selection -> Resolve -> []string -> Delegate
//
// # Modes
//
//   - [Single] and [Menu]: at most one row is checked; activating a
//     selectable row ends the prompt immediately.
//   - [Multiple]: rows toggle independently; [Controller.Confirm] commits.
//
// Group rows (options with children) and disabled rows are never checked.
//
// # Exit Paths
//
// A confirm with checked rows returns those rows in display order. Every
// other exit (an empty confirm, cancel, back, or a forced dismissal from
// the host [Navigator]) returns the options the host pre-selected.
//
// # Lifecycle
//
// A [Controller] moves Idle -> Shown -> Terminated exactly once. The
// delegate is invoked once, on the first terminating event; later events
// are ignored. Controllers are not reusable.
package choice
