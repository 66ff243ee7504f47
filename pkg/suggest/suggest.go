// Package suggest finds "did you mean" candidates for a mistyped word.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be suggested.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, most similar first. Ties are
// broken by name. Comparison is case-insensitive.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	var matches []scored
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(matches), maxResults))
	for _, m := range matches[:min(len(matches), maxResults)] {
		result = append(result, m.name)
	}
	return result
}

// similarity scores a against b between 0 and 1. An exact match is 1, a prefix match 0.9, anything
// else is derived from the edit distance.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	switch {
	case a == b:
		return 1.0
	case strings.HasPrefix(b, a):
		return 0.9
	}
	d := levenshtein(a, b)
	return 1.0 - float64(d)/float64(max(len(a), len(b)))
}

// levenshtein returns the byte-wise edit distance between a and b, keeping only two rows of the
// distance matrix.
func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
