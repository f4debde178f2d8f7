package util

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexRange is an inclusive range of test indices
type IndexRange struct {
	From int
	To   int
}

// String returns "N" for a single index and "A-B" otherwise
func (r IndexRange) String() string {
	if r.From == r.To {
		return strconv.Itoa(r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// Len returns the number of indices in the range
func (r IndexRange) Len() int {
	return r.To - r.From + 1
}

// Indices lists every index in the range in ascending order
func (r IndexRange) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.From; i <= r.To; i++ {
		out = append(out, i)
	}
	return out
}

// ParseIndexRange parses "7" or "5-12". Indices start at 1.
func ParseIndexRange(s string) (IndexRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return IndexRange{}, fmt.Errorf("empty index range")
	}

	lo, hi, isRange := strings.Cut(s, "-")
	from, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return IndexRange{}, fmt.Errorf("invalid index range %q: %w", s, err)
	}
	to := from
	if isRange {
		to, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return IndexRange{}, fmt.Errorf("invalid index range %q: %w", s, err)
		}
	}

	r := IndexRange{From: from, To: to}
	if err := r.Validate(); err != nil {
		return IndexRange{}, err
	}
	return r, nil
}

// Validate checks that the range starts at 1 or later and is not inverted
func (r IndexRange) Validate() error {
	if r.From < 1 {
		return fmt.Errorf("index range %s: indices start at 1", r)
	}
	if r.To < r.From {
		return fmt.Errorf("index range %s: end is before start", r)
	}
	return nil
}
