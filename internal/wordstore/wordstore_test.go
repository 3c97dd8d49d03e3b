package wordstore

import (
	"errors"
	"testing"
)

func TestHashMatchesDJB2(t *testing.T) {
	cases := map[string]uint64{
		"":      5381,
		"a":     177670,
		"cat":   193488125,
		"hello": 210714636441,
	}
	for word, want := range cases {
		if got := Hash(word); got != want {
			t.Fatalf("expected Hash(%q) = %d, got %d", word, want, got)
		}
	}
}

func TestHashWrapsAround(t *testing.T) {
	word := "zzzzzzzzzzzzzzzzzzzz"
	if got := Hash(word); got != 10241167226464826509 {
		t.Fatalf("unexpected wrapped hash: %d", got)
	}
}

func TestNewRejectsInvalidBucketCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		s, err := New(n)
		if !errors.Is(err, ErrInvalidBucketCount) {
			t.Fatalf("expected ErrInvalidBucketCount for %d, got %v", n, err)
		}
		if s != nil {
			t.Fatalf("expected nil store for %d", n)
		}
	}
}

func TestInsertTwiceCollapsesToOneEntry(t *testing.T) {
	s, err := New(DefaultBuckets)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := s.Insert("cat"); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
	if got := s.Count("cat"); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
	bucket := s.Bucket(1277)
	if len(bucket) != 1 || bucket[0].Word != "cat" {
		t.Fatalf("expected cat in bucket 1277, got %+v", bucket)
	}
}

func TestInsertIsCaseSensitive(t *testing.T) {
	s, _ := New(8)
	_ = s.Insert("Cat")
	_ = s.Insert("cat")
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestChainOrderIsMostRecentFirst(t *testing.T) {
	s, _ := New(1)
	for _, w := range []string{"one", "two", "three", "two"} {
		if err := s.Insert(w); err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
	}
	got := s.Entries()
	want := []WordCount{{"three", 1}, {"two", 2}, {"one", 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %+v at %d, got %+v", want[i], i, got[i])
		}
	}
	if s.Total() != 4 {
		t.Fatalf("expected total 4, got %d", s.Total())
	}
}

func TestEnumerationFollowsBucketOrder(t *testing.T) {
	s, _ := New(DefaultBuckets)
	// hello -> 153, cat -> 1277, a -> 1542
	for _, w := range []string{"a", "cat", "hello"} {
		_ = s.Insert(w)
	}
	var buckets []int
	var words []string
	s.Each(func(b int, wc WordCount) bool {
		buckets = append(buckets, b)
		words = append(words, wc.Word)
		return true
	})
	if len(words) != 3 || words[0] != "hello" || words[1] != "cat" || words[2] != "a" {
		t.Fatalf("unexpected order: %v", words)
	}
	if buckets[0] != 153 || buckets[1] != 1277 || buckets[2] != 1542 {
		t.Fatalf("unexpected buckets: %v", buckets)
	}
}

func TestEachStopsEarly(t *testing.T) {
	s, _ := New(1)
	_ = s.Insert("a")
	_ = s.Insert("b")
	seen := 0
	s.Each(func(int, WordCount) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Fatalf("expected 1 visit, got %d", seen)
	}
}

func TestInsertIgnoresEmptyWordAndNilStore(t *testing.T) {
	var nilStore *Store
	if err := nilStore.Insert("x"); err != nil {
		t.Fatalf("expected nil error on nil store, got %v", err)
	}
	s, _ := New(4)
	if err := s.Insert(""); err != nil {
		t.Fatalf("expected nil error on empty word, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestInsertCopiesWord(t *testing.T) {
	s, _ := New(4)
	buf := []byte("word")
	_ = s.Insert(string(buf))
	buf[0] = 'c'
	if s.Count("word") != 1 {
		t.Fatalf("expected stored word to be unaffected by buffer reuse")
	}
}

func TestDestroy(t *testing.T) {
	var nilStore *Store
	nilStore.Destroy()

	s, _ := New(4)
	_ = s.Insert("gone")
	s.Destroy()
	if s.Len() != 0 {
		t.Fatalf("expected no entries after destroy, got %d", s.Len())
	}
	if s.Count("gone") != 0 {
		t.Fatalf("expected zero count after destroy")
	}
	if err := s.Insert("again"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
