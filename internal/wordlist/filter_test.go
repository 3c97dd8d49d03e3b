package wordlist

import "testing"

func TestIsToken(t *testing.T) {
	if !IsToken("hello") {
		t.Fatalf("expected hello to be a token")
	}
	for _, word := range []string{"", "résumé", "Hello", "don’t", "co-op", "x2"} {
		if IsToken(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
