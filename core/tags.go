package core

// Separator is the literal token that ends tag-argument scanning. Every
// token after it is offered to the positional arguments verbatim.
const Separator = "--"

func isSeparator(s string) bool {
	return s == Separator
}

// A short tag is a dash followed by a non-digit, so negative numbers
// still read as values.
func isShortTag(s string) bool {
	return len(s) > 1 && s[0] == '-' && !isDigit(s[1])
}

func isAlternateTag(s string) bool {
	return len(s) > 2 && s[0] == '-' && s[1] == '-' && !isDigit(s[2])
}

// isTagLike reports whether s is likely an option tag rather than a value.
// The separator itself is excluded; it is handled by the registry. This is
// how multi-value arguments know where their list ends without an explicit
// count or closing delimiter.
func isTagLike(s string) bool {
	return s != "" && !isSeparator(s) && (isShortTag(s) || isAlternateTag(s))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
