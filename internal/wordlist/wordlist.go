// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// LoadWords reads one word per line from the provided file path.
// Lines are trimmed and lowercased; blank lines and lines starting with # are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadSet reads a word list and keeps only entries that can occur as tokens.
func LoadSet(path string) (map[string]struct{}, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if IsToken(w) {
			set[w] = struct{}{}
		}
	}
	return set, nil
}
