// Package prompt renders a shown choice prompt as an interactive terminal
// list.
//
// The [Model] drives a [choice.Controller]: key presses become row
// activations, confirm or cancel calls, and the program quits once the
// controller reports a result. Terminations that do not come from the
// keyboard, such as a host navigator dismissing the prompt, reach the
// model through the controller's completion.
//
// Key bindings:
//
//   - ↑/↓, home/end: move over selectable rows
//   - enter or space: choose the row (single and menu mode)
//   - space: toggle the row, enter: confirm (multiple mode)
//   - typing: fuzzy filter; esc clears the filter, then closes
//   - ←: back, ctrl+c: close
package prompt
