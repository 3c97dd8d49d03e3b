package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	data := "# stop words\nThe\n\n  and \nco-op\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	set, err := LoadSet(path)
	if err != nil {
		t.Fatalf("load set: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 words, got %v", set)
	}
	for _, w := range []string{"the", "and"} {
		if _, ok := set[w]; !ok {
			t.Fatalf("expected %q in set", w)
		}
	}
}

func TestLoadWordsMissing(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
