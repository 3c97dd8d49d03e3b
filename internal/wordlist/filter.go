// Package wordlist provides word list filtering helpers.
package wordlist

// IsToken reports whether word consists only of lowercase ASCII letters.
func IsToken(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
