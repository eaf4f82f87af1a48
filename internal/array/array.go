package array

import (
	"math/rand"
	"sort"
)

// Array holds the bar heights being sorted. Its length is fixed at
// construction; sorting only permutes or overwrites elements in place.
type Array struct {
	values []int
}

func New(n int) *Array {
	return &Array{values: make([]int, n)}
}

func FromValues(values []int) *Array {
	v := make([]int, len(values))
	copy(v, values)
	return &Array{values: v}
}

func (a *Array) Len() int           { return len(a.values) }
func (a *Array) At(i int) int       { return a.values[i] }
func (a *Array) Set(i, v int)       { a.values[i] = v }
func (a *Array) Swap(i, j int)      { a.values[i], a.values[j] = a.values[j], a.values[i] }
func (a *Array) Less(i, j int) bool { return a.values[i] < a.values[j] }

// Randomize assigns every element an independent uniform value in [lo, hi].
func (a *Array) Randomize(rng *rand.Rand, lo, hi int) {
	span := hi - lo + 1
	for i := range a.values {
		a.values[i] = lo + rng.Intn(span)
	}
}

// Values returns a copy of the current contents.
func (a *Array) Values() []int {
	v := make([]int, len(a.values))
	copy(v, a.values)
	return v
}

func (a *Array) Clone() *Array {
	return FromValues(a.values)
}

func (a *Array) IsSorted() bool {
	for i := 1; i < len(a.values); i++ {
		if a.values[i-1] > a.values[i] {
			return false
		}
	}
	return true
}

func (a *Array) InRange(lo, hi int) bool {
	for _, v := range a.values {
		if v < lo || v > hi {
			return false
		}
	}
	return true
}

// SameMultiset reports whether other holds exactly the same elements,
// ignoring order.
func (a *Array) SameMultiset(other *Array) bool {
	if a.Len() != other.Len() {
		return false
	}
	x, y := a.Values(), other.Values()
	sort.Ints(x)
	sort.Ints(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Max returns the largest element, or 0 for an empty array.
func (a *Array) Max() int {
	m := 0
	for _, v := range a.values {
		if v > m {
			m = v
		}
	}
	return m
}
