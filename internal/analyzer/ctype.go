package analyzer

// Byte classes follow the C locale.

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsPrint reports whether c is a printable ASCII character, space included.
func IsPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
