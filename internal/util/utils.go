package util

import "strings"

// Blank reports whether s is empty once surrounding whitespace is removed.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// AnyBlank reports whether at least one of values is blank.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if Blank(v) {
			return true
		}
	}
	return false
}

// Clamp trims s and cuts it to at most max runes.
func Clamp(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if max >= 0 && len(r) > max {
		return string(r[:max])
	}
	return s
}
