package analyzer

import (
	"fmt"
	"strings"
)

// WordPolicy decides what happens to tokens longer than the configured maximum.
type WordPolicy string

const (
	// PolicyTruncate keeps the first MaxWordLength letters.
	PolicyTruncate WordPolicy = "truncate"
	// PolicyReject drops over-long tokens entirely.
	PolicyReject WordPolicy = "reject"
	// PolicyUnbounded never limits token length.
	PolicyUnbounded WordPolicy = "unbounded"
)

// ParseWordPolicy validates a policy name. An empty name means PolicyTruncate.
func ParseWordPolicy(value string) (WordPolicy, error) {
	switch WordPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyTruncate:
		return PolicyTruncate, nil
	case PolicyReject:
		return PolicyReject, nil
	case PolicyUnbounded:
		return PolicyUnbounded, nil
	}
	return "", fmt.Errorf("unknown word policy %q (expected truncate, reject or unbounded)", value)
}

type tokenizer struct {
	buf      []byte
	limit    int
	policy   WordPolicy
	overflow bool
	dropped  bool
}

func newTokenizer(opts Options) *tokenizer {
	policy := opts.Policy
	if policy == "" {
		policy = PolicyTruncate
	}
	limit := opts.MaxWordLength
	if limit <= 0 {
		limit = DefaultMaxWordLength
	}
	if policy == PolicyUnbounded {
		limit = 0
	}
	capacity := limit
	if capacity == 0 {
		capacity = DefaultMaxWordLength
	}
	return &tokenizer{buf: make([]byte, 0, capacity), limit: limit, policy: policy}
}

func (t *tokenizer) add(c byte) {
	if t.limit > 0 && len(t.buf) >= t.limit {
		t.overflow = true
		return
	}
	t.buf = append(t.buf, c)
}

func (t *tokenizer) pending() bool {
	return len(t.buf) > 0
}

// take returns the buffered token and resets the buffer.
func (t *tokenizer) take() (string, bool) {
	word := string(t.buf)
	overflow := t.overflow
	t.buf = t.buf[:0]
	t.overflow = false
	t.dropped = false
	if word == "" {
		return "", false
	}
	if overflow && t.policy == PolicyReject {
		t.dropped = true
		return "", false
	}
	return word, true
}

func (t *tokenizer) rejected() bool {
	return t.dropped
}
