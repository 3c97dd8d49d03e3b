package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/tstat/internal/analyzer"
	"github.com/verte-zerg/tstat/internal/wordstore"
)

const indent = "  "

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
)

// Render writes the plain-text report for res.
func Render(w io.Writer, res analyzer.Result, opts Options) error {
	title := fmt.Sprintf("--- Analysis Report for %s ---", res.Filename)
	if _, err := fmt.Fprintln(w, styled(titleStyle, title, opts.Color)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if opts.Overall {
		if err := RenderOverall(w, res, opts.Color); err != nil {
			return err
		}
	}
	if opts.CharFreq {
		if err := RenderChars(w, PrintableChars(res.Freq), opts.Color); err != nil {
			return err
		}
	}
	if opts.WordFreq {
		if err := RenderWords(w, SelectWords(res.Store, opts), opts.Color); err != nil {
			return err
		}
	}
	return nil
}

// RenderOverall prints the total counters.
func RenderOverall(w io.Writer, res analyzer.Result, color bool) error {
	rows := [][]string{
		{"Total Characters:", strconv.FormatInt(res.Chars, 10)},
		{"Total Words:", strconv.FormatInt(res.Words, 10)},
		{"Total Lines:", strconv.FormatInt(res.Lines, 10)},
	}
	return writeSection(w, "Overall Statistics:", layout([]column{labelColumn, valueColumn}, rows), color)
}

// RenderChars prints the character frequency table.
func RenderChars(w io.Writer, chars []CharCount, color bool) error {
	rows := make([][]string, 0, len(chars))
	for _, cc := range chars {
		rows = append(rows, []string{charLabel(cc.Char), strconv.FormatInt(cc.Count, 10)})
	}
	lines := layout([]column{{title: "Character"}, countColumn}, rows)
	return writeSection(w, "Character Frequency:", lines, color)
}

// RenderWords prints the word frequency table.
func RenderWords(w io.Writer, words []wordstore.WordCount, color bool) error {
	rows := make([][]string, 0, len(words))
	for _, wc := range words {
		rows = append(rows, []string{wc.Word, strconv.Itoa(wc.Count)})
	}
	lines := layout([]column{{title: "Word"}, countColumn}, rows)
	return writeSection(w, "Word Frequency:", lines, color)
}

func writeSection(w io.Writer, title string, lines []string, color bool) error {
	if _, err := fmt.Fprintln(w, styled(sectionStyle, title, color)); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, indent+line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func charLabel(ch string) string {
	if ch == " " {
		return "<space>"
	}
	return ch
}

func styled(style lipgloss.Style, s string, color bool) string {
	if !color {
		return s
	}
	return style.Render(s)
}

// ShouldUseColor reports whether styled output suits w.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
