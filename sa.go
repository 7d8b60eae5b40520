package suffixtree

import (
	"cmp"
	"slices"
)

// BuildSuffixArray returns the starting positions of the suffixes of text in
// lexicographic order, sorting by prefixes of doubling length.
func BuildSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	rank := make([]int, n)
	next := make([]int, n)
	for i := range text {
		sa[i] = i
		rank[i] = int(text[i])
	}

	for k := 1; n > 1; k <<= 1 {
		// A suffix shorter than k sorts before every longer one sharing its prefix.
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		compare := func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(second(a), second(b))
		}
		slices.SortFunc(sa, compare)

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if compare(sa[i-1], sa[i]) < 0 {
				next[sa[i]]++
			}
		}
		copy(rank, next)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return sa
}
