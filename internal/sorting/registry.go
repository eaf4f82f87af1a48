package sorting

import (
	"fmt"
	"strings"
)

// Algorithm is one instrumented sort, selectable by its key.
type Algorithm struct {
	Key         rune
	Name        string
	Description string
	sort        func(s *stepper)
}

var algorithms = []Algorithm{
	{Key: '1', Name: "selection", Description: "minimum scan, one swap per pass", sort: selection},
	{Key: '2', Name: "bubble", Description: "adjacent swaps, shrinking suffix", sort: bubble},
	{Key: '3', Name: "insertion", Description: "shift into a sorted prefix", sort: insertion},
	{Key: '4', Name: "merge", Description: "recursive split and merge", sort: merge},
	{Key: '5', Name: "quick", Description: "lomuto partition, last pivot", sort: quick},
	{Key: '6', Name: "heap", Description: "max-heap sift-down", sort: heap},
	{Key: '7', Name: "shell", Description: "halving gap insertion", sort: shell},
}

// Algorithms returns every algorithm in key order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func ByKey(key rune) (Algorithm, bool) {
	for _, alg := range algorithms {
		if alg.Key == key {
			return alg, true
		}
	}
	return Algorithm{}, false
}

// Lookup resolves an algorithm by name (case-insensitive, an optional
// "sort" suffix is accepted) or by its key digit.
func Lookup(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(strings.TrimSuffix(n, "sort"), "_")
	n = strings.TrimSpace(n)
	for _, alg := range algorithms {
		if alg.Name == n || string(alg.Key) == n {
			return alg, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

func Names() []string {
	names := make([]string, len(algorithms))
	for i, alg := range algorithms {
		names[i] = alg.Name
	}
	return names
}
