// Package wordstore implements a fixed-size, separately chained hash table of word counts.
package wordstore

import "errors"

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 4096

var (
	// ErrInvalidBucketCount is returned by New for a bucket count below 1.
	ErrInvalidBucketCount = errors.New("bucket count must be at least 1")
	// ErrClosed is returned by Insert after Destroy.
	ErrClosed = errors.New("word store is destroyed")
)

// WordCount is a word and its number of occurrences.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// entry is one link of a bucket chain.
type entry struct {
	word  string
	count int
	next  *entry
}

// Store maps words to occurrence counts.
// Buckets never grow, so enumeration order is fully determined by the inserts.
type Store struct {
	buckets []*entry
	closed  bool
}

// New allocates a store with bucketCount empty buckets.
func New(bucketCount int) (*Store, error) {
	if bucketCount < 1 {
		return nil, ErrInvalidBucketCount
	}
	return &Store{buckets: make([]*entry, bucketCount)}, nil
}

// Hash is the djb2 string hash (h*33 + c, seeded with 5381) over the bytes of word.
func Hash(word string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(word); i++ {
		h = (h << 5) + h + uint64(word[i])
	}
	return h
}

func (s *Store) index(word string) int {
	return int(Hash(word) % uint64(len(s.buckets)))
}

// Insert adds one occurrence of word. New words are placed at the head of their chain.
// A nil store or an empty word is a no-op.
func (s *Store) Insert(word string) error {
	if s == nil || word == "" {
		return nil
	}
	if s.closed {
		return ErrClosed
	}
	idx := s.index(word)
	for e := s.buckets[idx]; e != nil; e = e.next {
		if e.word == word {
			e.count++
			return nil
		}
	}
	// Own a copy so callers may reuse the backing bytes of word.
	owned := string([]byte(word))
	s.buckets[idx] = &entry{word: owned, count: 1, next: s.buckets[idx]}
	return nil
}

// Count returns the number of occurrences recorded for word.
func (s *Store) Count(word string) int {
	if s == nil || s.closed || word == "" {
		return 0
	}
	for e := s.buckets[s.index(word)]; e != nil; e = e.next {
		if e.word == word {
			return e.count
		}
	}
	return 0
}

// BucketCount returns the number of buckets.
func (s *Store) BucketCount() int {
	if s == nil {
		return 0
	}
	return len(s.buckets)
}

// Bucket returns the entries of bucket i in chain order.
func (s *Store) Bucket(i int) []WordCount {
	if s == nil || i < 0 || i >= len(s.buckets) {
		return nil
	}
	var out []WordCount
	for e := s.buckets[i]; e != nil; e = e.next {
		out = append(out, WordCount{Word: e.word, Count: e.count})
	}
	return out
}

// Each calls fn for every entry in bucket order, then chain order, until fn returns false.
func (s *Store) Each(fn func(bucket int, wc WordCount) bool) {
	if s == nil {
		return
	}
	for i, head := range s.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(i, WordCount{Word: e.word, Count: e.count}) {
				return
			}
		}
	}
}

// Entries returns every entry in enumeration order.
func (s *Store) Entries() []WordCount {
	out := make([]WordCount, 0, s.Len())
	s.Each(func(_ int, wc WordCount) bool {
		out = append(out, wc)
		return true
	})
	return out
}

// Len returns the number of distinct words.
func (s *Store) Len() int {
	n := 0
	s.Each(func(int, WordCount) bool {
		n++
		return true
	})
	return n
}

// Total returns the sum of all counts.
func (s *Store) Total() int {
	n := 0
	s.Each(func(_ int, wc WordCount) bool {
		n += wc.Count
		return true
	})
	return n
}

// Destroy releases every chain and the bucket array. It is safe on a nil store.
func (s *Store) Destroy() {
	if s == nil {
		return
	}
	for i, head := range s.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			e = next
		}
		s.buckets[i] = nil
	}
	s.buckets = nil
	s.closed = true
}
