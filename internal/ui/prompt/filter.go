package prompt

import (
	"strings"
	"unicode"
)

// printable drops control characters from typed or pasted text.
func printable(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text)
}

func deleteLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// deleteLastWord removes the last word (for alt+backspace), keeping the
// separating space.
func deleteLastWord(s string) string {
	s = strings.TrimRight(s, " ")
	lastSpace := strings.LastIndex(s, " ")
	if lastSpace == -1 {
		return ""
	}
	return s[:lastSpace+1]
}
