package collapse

// candidates.go: the CandidateSet bitset, the domain of a single cell.

import (
	"fmt"
	"math/bits"
	"strings"
)

// CandidateSet is a fixed-capacity bitset over state indices [0, n).
// Each set bit marks a state the owning cell could still take.
//
// CandidateSet is immutable: every operation returns a new set rather than
// modifying in place. This makes word arrays safe to share structurally
// between board snapshots, which keeps backtracking cheap.
//
// Bits at positions >= n are never set by any operation.
type CandidateSet struct {
	n     int
	words []uint64
}

// NewCandidateSet returns the full domain {0..n-1}.
func NewCandidateSet(n int) CandidateSet {
	if n <= 0 {
		return CandidateSet{}
	}
	cs := CandidateSet{n: n, words: make([]uint64, (n+63)/64)}
	for i := range cs.words {
		cs.words[i] = ^uint64(0)
	}
	cs.words[len(cs.words)-1] = trailingMask(n)
	return cs
}

// EmptyCandidateSet returns a set of capacity n with no candidates.
// An empty domain represents a contradicted cell.
func EmptyCandidateSet(n int) CandidateSet {
	if n <= 0 {
		return CandidateSet{}
	}
	return CandidateSet{n: n, words: make([]uint64, (n+63)/64)}
}

// NewSingleton returns a set of capacity n containing only value.
func NewSingleton(n, value int) CandidateSet {
	cs := EmptyCandidateSet(n)
	if value >= 0 && value < n {
		cs.words[value/64] |= 1 << uint(value%64)
	}
	return cs
}

// NewCandidateSetOf returns a set of capacity n containing exactly the given
// values. Values outside [0, n) are ignored.
func NewCandidateSetOf(n int, values ...int) CandidateSet {
	cs := EmptyCandidateSet(n)
	for _, v := range values {
		if v >= 0 && v < n {
			cs.words[v/64] |= 1 << uint(v%64)
		}
	}
	return cs
}

// trailingMask returns a mask covering the valid bits of the last word for a
// capacity-n set.
func trailingMask(n int) uint64 {
	if rem := n % 64; rem != 0 {
		return (uint64(1) << uint(rem)) - 1
	}
	return ^uint64(0)
}

// Capacity returns n, the number of distinct states the set ranges over.
func (c CandidateSet) Capacity() int { return c.n }

// Entropy returns the number of candidates in the set (the popcount).
func (c CandidateSet) Entropy() int {
	count := 0
	for _, w := range c.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// IsEmpty returns true if no candidate remains.
func (c CandidateSet) IsEmpty() bool {
	for _, w := range c.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Has returns true if value is a candidate. O(1).
func (c CandidateSet) Has(value int) bool {
	if value < 0 || value >= c.n {
		return false
	}
	return (c.words[value/64]>>uint(value%64))&1 == 1
}

// IsSingleton returns true if exactly one candidate remains.
func (c CandidateSet) IsSingleton() bool { return c.Entropy() == 1 }

// SingletonValue returns the lowest candidate in the set, or -1 if the set
// is empty. For singleton sets this is the committed value.
func (c CandidateSet) SingletonValue() int {
	for i, w := range c.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// Union returns a new set containing the candidates of both sets.
// Both sets must have the same capacity; mismatched capacities yield an
// empty set of c's capacity.
func (c CandidateSet) Union(other CandidateSet) CandidateSet {
	if c.n != other.n {
		return EmptyCandidateSet(c.n)
	}
	out := CandidateSet{n: c.n, words: make([]uint64, len(c.words))}
	for i := range c.words {
		out.words[i] = c.words[i] | other.words[i]
	}
	return out
}

// Without returns a new set with every candidate in forbidden removed
// (a &^ b). This is the only reduction the engine performs: domains shrink,
// they are never widened after creation.
func (c CandidateSet) Without(forbidden CandidateSet) CandidateSet {
	if c.n != forbidden.n {
		return c
	}
	out := CandidateSet{n: c.n, words: make([]uint64, len(c.words))}
	for i := range c.words {
		out.words[i] = c.words[i] &^ forbidden.words[i]
	}
	return out
}

// IterateValues calls f for each candidate in ascending order.
func (c CandidateSet) IterateValues(f func(value int)) {
	for i, w := range c.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w))
			w &^= low
		}
	}
}

// Values returns all candidates as an ascending slice. Useful in tests.
func (c CandidateSet) Values() []int {
	var values []int
	c.IterateValues(func(v int) { values = append(values, v) })
	return values
}

// Equal returns true if both sets have the same capacity and candidates.
func (c CandidateSet) Equal(other CandidateSet) bool {
	if c.n != other.n || len(c.words) != len(other.words) {
		return false
	}
	for i := range c.words {
		if c.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation such as "{0,3,5}".
func (c CandidateSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	c.IterateValues(func(v int) {
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%d", v)
	})
	b.WriteString("}")
	return b.String()
}
