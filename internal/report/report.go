// Package report renders analysis results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tstat/internal/analyzer"
	"github.com/verte-zerg/tstat/internal/wordstore"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Order selects how word rows are arranged.
type Order string

// Supported word orders.
const (
	// OrderBucket enumerates the store as is: bucket order, then chain order.
	OrderBucket Order = "bucket"
	OrderCount  Order = "count"
	OrderAlpha  Order = "alpha"
)

// Options control which sections are rendered and how.
type Options struct {
	Overall  bool
	CharFreq bool
	WordFreq bool
	Order    Order
	Top      int
	Exclude  map[string]struct{}
	Color    bool
}

// Document is the structured form of a report.
type Document struct {
	File       string                `json:"file" yaml:"file"`
	Overall    *Overall              `json:"overall,omitempty" yaml:"overall,omitempty"`
	Characters []CharCount           `json:"characters,omitempty" yaml:"characters,omitempty"`
	Words      []wordstore.WordCount `json:"words,omitempty" yaml:"words,omitempty"`
}

// Overall holds the total counters.
type Overall struct {
	Characters int64 `json:"characters" yaml:"characters"`
	Words      int64 `json:"words" yaml:"words"`
	Lines      int64 `json:"lines" yaml:"lines"`
}

// CharCount is the frequency of one printable byte.
type CharCount struct {
	Char  string `json:"char" yaml:"char"`
	Code  int    `json:"code" yaml:"code"`
	Count int64  `json:"count" yaml:"count"`
}

// ParseFormat validates a format name. An empty name means FormatText.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected text, json or yaml)", value)
}

// ParseOrder validates an order name. An empty name means OrderBucket.
func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case "", OrderBucket:
		return OrderBucket, nil
	case OrderCount:
		return OrderCount, nil
	case OrderAlpha:
		return OrderAlpha, nil
	}
	return "", fmt.Errorf("unknown order %q (expected bucket, count or alpha)", value)
}

// Next cycles through the supported orders.
func (o Order) Next() Order {
	switch o {
	case OrderBucket, "":
		return OrderCount
	case OrderCount:
		return OrderAlpha
	default:
		return OrderBucket
	}
}

// Build assembles the enabled sections of res into a Document.
func Build(res analyzer.Result, opts Options) Document {
	doc := Document{File: res.Filename}
	if opts.Overall {
		doc.Overall = &Overall{Characters: res.Chars, Words: res.Words, Lines: res.Lines}
	}
	if opts.CharFreq {
		doc.Characters = PrintableChars(res.Freq)
	}
	if opts.WordFreq {
		doc.Words = SelectWords(res.Store, opts)
	}
	return doc
}

// PrintableChars returns the non-zero entries of freq for printable bytes, by byte value.
func PrintableChars(freq *analyzer.FreqTable) []CharCount {
	if freq == nil {
		return nil
	}
	var out []CharCount
	for i, n := range freq {
		if n > 0 && analyzer.IsPrint(byte(i)) {
			out = append(out, CharCount{Char: string(rune(i)), Code: i, Count: n})
		}
	}
	return out
}

// SelectWords applies exclusion, ordering and the top limit to the store's entries.
func SelectWords(store *wordstore.Store, opts Options) []wordstore.WordCount {
	entries := store.Entries()
	if len(opts.Exclude) > 0 {
		kept := entries[:0]
		for _, wc := range entries {
			if _, skip := opts.Exclude[wc.Word]; !skip {
				kept = append(kept, wc)
			}
		}
		entries = kept
	}
	switch opts.Order {
	case OrderCount:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Count == entries[j].Count {
				return entries[i].Word < entries[j].Word
			}
			return entries[i].Count > entries[j].Count
		})
	case OrderAlpha:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Word < entries[j].Word
		})
	}
	if opts.Top > 0 && len(entries) > opts.Top {
		entries = entries[:opts.Top]
	}
	return entries
}

// Write renders res to w in the requested format.
func Write(w io.Writer, format Format, res analyzer.Result, opts Options) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, Build(res, opts))
	case FormatYAML:
		return RenderYAML(w, Build(res, opts))
	default:
		return Render(w, res, opts)
	}
}

// RenderJSON writes doc as indented JSON.
func RenderJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}

// RenderYAML writes doc as YAML.
func RenderYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return nil
}
