package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tstat/internal/analyzer"
	"github.com/verte-zerg/tstat/internal/report"
	"github.com/verte-zerg/tstat/internal/wordstore"
)

func newTestModel(t *testing.T, input string) *Model {
	t.Helper()
	store, err := wordstore.New(16)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(store.Destroy)
	var freq analyzer.FreqTable
	res, err := analyzer.AnalyzeReader(strings.NewReader(input), "notes.txt", &freq, store, analyzer.Options{})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	m := NewModel(res, report.Options{Overall: true, CharFreq: true, WordFreq: true})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewShowsTabsAndSummary(t *testing.T) {
	m := newTestModel(t, "b a b\n")
	out := m.View()
	for _, needle := range []string{"Overview", "Characters", "Words", "File: notes.txt", "distinct words=2", "Total Characters:"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("view missing %q:\n%s", needle, out)
		}
	}
}

func TestViewEmptyBeforeSize(t *testing.T) {
	store, _ := wordstore.New(1)
	m := NewModel(analyzer.Result{Store: store, Freq: &analyzer.FreqTable{}}, report.Options{})
	if m.View() != "" {
		t.Fatalf("expected empty view before window size")
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newTestModel(t, "x")
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.ActiveTab() != tabWords {
		t.Fatalf("expected wrap to words tab, got %d", m.ActiveTab())
	}
	if !strings.Contains(m.View(), "Count") {
		t.Fatalf("expected word table header")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveTab() != tabOverview {
		t.Fatalf("expected overview tab, got %d", m.ActiveTab())
	}
}

func TestOrderKeyCyclesWordRows(t *testing.T) {
	m := newTestModel(t, "b a b c")
	if m.Order() != report.OrderBucket {
		t.Fatalf("expected bucket order, got %q", m.Order())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if m.Order() != report.OrderCount {
		t.Fatalf("expected count order, got %q", m.Order())
	}
	rows := m.wordTable.Rows()
	if len(rows) != 3 || rows[0][1] != "b" || rows[0][2] != "2" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	rows = m.wordTable.Rows()
	if m.Order() != report.OrderAlpha || rows[0][1] != "a" {
		t.Fatalf("expected alpha order, got %q %v", m.Order(), rows)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, "x")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestNoWordsMessage(t *testing.T) {
	m := newTestModel(t, "123 456")
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(m.View(), "No words found.") {
		t.Fatalf("expected empty word message")
	}
}
