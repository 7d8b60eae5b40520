package suffixtree

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[i] is the longest common prefix of suffixArray[i] and suffixArray[i+1].
func BuildLCPArray(suffixArray []int, text []byte) []int {
	if len(suffixArray) == 0 {
		return nil
	}
	rank := make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}

	lcp := make([]int, len(suffixArray)-1)
	l := 0
	for i := range suffixArray {
		if rank[i]+1 == len(suffixArray) {
			l = 0
			continue
		}
		j := suffixArray[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}

// DistinctSubstrings counts the distinct non-empty substrings of text.
func DistinctSubstrings(text []byte) int {
	sa := BuildSuffixArray(text)
	total := 0
	for _, p := range sa {
		total += len(text) - p
	}
	for _, l := range BuildLCPArray(sa, text) {
		total -= l
	}
	return total
}
