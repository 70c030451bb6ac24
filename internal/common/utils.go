package common

import "strings"

// PadRight pads s with spaces on the right up to width n. Strings already
// at least n wide are returned unchanged.
func PadRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// IndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func IndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}
