// Package analyzer runs the single streaming pass that collects file statistics.
package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/verte-zerg/tstat/internal/wordstore"
)

// DefaultMaxWordLength caps tokens when no explicit limit is configured.
const DefaultMaxWordLength = 99

// FreqTable counts occurrences of every byte value.
type FreqTable = [256]int64

// Result holds the counters produced by one pass.
type Result struct {
	Filename string
	Chars    int64
	Words    int64
	Lines    int64
	// Dropped counts tokens that were not stored (policy rejection or insert failure).
	Dropped int64
	Freq    *FreqTable
	Store   *wordstore.Store
}

// FileOpenError reports that the input could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open input: %v", e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// Options tune tokenization for the word-frequency store.
type Options struct {
	Policy        WordPolicy
	MaxWordLength int
	// OnInsertError is called when the store refuses a token. The pass continues.
	OnInsertError func(word string, err error)
}

// Analyze opens path and streams it once, updating freq and store in place.
// On a FileOpenError nothing is modified.
func Analyze(path string, freq *FreqTable, store *wordstore.Store, opts Options) (Result, error) {
	if freq == nil {
		return Result{}, errors.New("frequency table is nil")
	}
	file, err := os.Open(path)
	if err != nil {
		return Result{}, &FileOpenError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return AnalyzeReader(file, path, freq, store, opts)
}

// AnalyzeReader performs the same pass as Analyze over an arbitrary reader.
func AnalyzeReader(r io.Reader, name string, freq *FreqTable, store *wordstore.Store, opts Options) (Result, error) {
	if freq == nil {
		return Result{}, errors.New("frequency table is nil")
	}
	res := Result{Filename: name, Freq: freq, Store: store}
	tok := newTokenizer(opts)
	flush := func() {
		word, ok := tok.take()
		if !ok {
			if tok.rejected() {
				res.Dropped++
			}
			return
		}
		if err := store.Insert(word); err != nil {
			res.Dropped++
			if opts.OnInsertError != nil {
				opts.OnInsertError(word, err)
			}
		}
	}

	inWord := false
	reader := bufio.NewReader(r)
	for {
		c, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return res, fmt.Errorf("failed to read %s: %w", name, err)
		}
		res.Chars++
		if c == '\n' {
			res.Lines++
		}
		freq[c]++

		if isSpace(c) {
			inWord = false
		} else if !inWord {
			res.Words++
			inWord = true
		}

		if isAlpha(c) {
			tok.add(toLower(c))
		} else if tok.pending() {
			flush()
		}
	}
	if tok.pending() {
		flush()
	}
	return res, nil
}
