package conversion

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

// Fibonacci returns F(n) for 0 <= n <= MaxIndex using the iterative
// recurrence in O(n) time and O(1) space.
//
// Indices outside that domain return the sentinel 0. F of a negative index
// is not defined here, and F(94) onwards would wrap around 64 bits, so 0 never
// stands for a real value outside n == 0. Use [Table.Lookup] to get an
// explicit error instead.
func Fibonacci(n int) uint64 {
	if n <= 0 || n > MaxIndex {
		return 0
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Table is an immutable, materialized prefix F(0)..F(MaxIndex()) of the
// Fibonacci sequence. It is safe for concurrent use.
type Table struct {
	values []uint64
}

// BuildTable eagerly computes F(0)..F(maxIndex). The table stops early at
// the 64-bit boundary: an addition that wraps around (next < previous) marks
// the natural end of the table, so requesting more than MaxIndex yields
// exactly MaxIndex+1 entries. A negative maxIndex yields a table holding
// only F(0).
func BuildTable(maxIndex int) *Table {
	values := []uint64{0}
	if maxIndex >= 1 {
		values = append(values, 1)
	}
	for i := 2; i <= maxIndex; i++ {
		next := values[i-1] + values[i-2]
		if next < values[i-1] {
			break
		}
		values = append(values, next)
	}
	return &Table{values: values}
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the process-wide table of F(0)..F(93). It is built on
// first use behind a sync.Once and never mutated afterwards.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = BuildTable(MaxIndex)
	})
	return defaultTable
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.values) }

// MaxIndex returns the largest index held by the table.
func (t *Table) MaxIndex() int { return len(t.values) - 1 }

// At returns F(i) and whether i is held by the table.
func (t *Table) At(i int) (uint64, bool) {
	if i < 0 || i >= len(t.values) {
		return 0, false
	}
	return t.values[i], true
}

// Lookup returns F(i) or an OutOfRangeError when i is not held by the table.
func (t *Table) Lookup(i int) (uint64, error) {
	v, ok := t.At(i)
	if !ok {
		return 0, apperrors.OutOfRangeError{Field: "fibonacci index", Value: i, Max: t.MaxIndex()}
	}
	return v, nil
}

// Values returns a copy of the table contents.
func (t *Table) Values() []uint64 {
	out := make([]uint64, len(t.values))
	copy(out, t.values)
	return out
}

// Bracket implements BracketSource by searching the table for the smallest
// k >= 2 with miles < F(k+1), provided F(k+2) is also held by the table.
func (t *Table) Bracket(miles float64) (Bracket, bool) {
	// Candidates for the upper knot i = k+1 range over [3, MaxIndex()-1]
	// so that F(i+1) exists.
	lo := firstBracketIndex + 1
	n := t.MaxIndex() - lo
	if n <= 0 {
		return Bracket{}, false
	}
	j := sort.Search(n, func(j int) bool { return float64(t.values[lo+j]) > miles })
	if j == n {
		return Bracket{}, false
	}
	i := lo + j
	return Bracket{
		Index: i - 1,
		Lower: float64(t.values[i-1]),
		Upper: float64(t.values[i]),
		Next:  float64(t.values[i+1]),
	}, true
}
