package suffixtree

import (
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
)

// Index is a suffix array over the combined text of two sentinel-terminated
// strings, with range-minimum queries over its LCP array.
type Index struct {
	text     []byte
	firstLen int
	sa       []int
	lcp      []int
	lcpRMQ   *rmq.RMQHybridNaive[int]
	runes    bool
}

// NewIndex indexes text, whose first firstLen bytes are the first string and
// its sentinel. The last byte of text is the second sentinel.
func NewIndex(text []byte, firstLen int) *Index {
	return newIndex(text, firstLen, false)
}

// NewRuneIndex is NewIndex for UTF-8 text: CommonCount only counts
// substrings made of whole runes.
func NewRuneIndex(text []byte, firstLen int) *Index {
	return newIndex(text, firstLen, true)
}

func newIndex(text []byte, firstLen int, runes bool) *Index {
	sa := BuildSuffixArray(text)
	lcp := BuildLCPArray(sa, text)
	var lcpRMQ *rmq.RMQHybridNaive[int]
	if len(lcp) > 0 {
		lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}
	return &Index{
		text:     text,
		firstLen: firstLen,
		sa:       sa,
		lcp:      lcp,
		lcpRMQ:   lcpRMQ,
		runes:    runes,
	}
}

// lcpBetween returns the longest common prefix of the suffixes at suffix
// array positions x < y.
func (ix *Index) lcpBetween(x, y int) int {
	return ix.lcp[ix.lcpRMQ.Query(x, y-1)]
}

// limit is the length of the suffix at p up to, not including, its sentinel.
func (ix *Index) limit(p int) int {
	if p < ix.firstLen {
		return ix.firstLen - 1 - p
	}
	return len(ix.text) - 1 - p
}

func (ix *Index) isSentinel(c byte) bool {
	return c == ix.text[ix.firstLen-1] || c == ix.text[len(ix.text)-1]
}

// findBoundaries returns the suffix array range [l, r] of suffixes having
// pattern as a prefix, or -1, -1.
func (ix *Index) findBoundaries(pattern []byte) (int, int) {
	n := len(ix.sa)
	l := sort.Search(n, func(i int) bool {
		return bytes.Compare(pattern, ix.text[ix.sa[i]:]) <= 0
	})
	if l == n || !bytes.HasPrefix(ix.text[ix.sa[l]:], pattern) {
		return -1, -1
	}

	// T T T F F F over "has pattern as prefix"; search the first F.
	r := sort.Search(n-l, func(i int) bool {
		if i == 0 {
			return false
		}
		return ix.lcpBetween(l, l+i) < len(pattern)
	})
	return l, l + r - 1
}

// Occurrences counts the positions where pattern starts in the first and in
// the second string. Empty patterns and patterns holding a sentinel byte
// occur nowhere.
func (ix *Index) Occurrences(pattern []byte) (first, second int) {
	if len(pattern) == 0 {
		return 0, 0
	}
	for _, c := range pattern {
		if ix.isSentinel(c) {
			return 0, 0
		}
	}

	l, r := ix.findBoundaries(pattern)
	if l == -1 {
		return 0, 0
	}
	for i := l; i <= r; i++ {
		if ix.sa[i] < ix.firstLen {
			first++
		} else {
			second++
		}
	}
	return first, second
}

// distinctIn counts distinct sentinel-free substrings starting at the
// positions accepted by keep.
func (ix *Index) distinctIn(keep func(p int) bool) int {
	total, prev := 0, -1
	for i, p := range ix.sa {
		if !keep(p) || (ix.runes && !utf8.RuneStart(ix.text[p])) {
			continue
		}
		shared := 0
		if prev >= 0 {
			shared = ix.lcpBetween(prev, i)
		}
		total += ix.ends(p+shared, p+ix.limit(p))
		prev = i
	}
	return total
}

// ends counts the substring ends in (from, to], only at rune starts in rune mode.
func (ix *Index) ends(from, to int) int {
	if !ix.runes {
		return max(0, to-from)
	}
	n := 0
	for j := from + 1; j <= to; j++ {
		if utf8.RuneStart(ix.text[j]) {
			n++
		}
	}
	return n
}

// CommonCount returns the number of distinct substrings shared by both
// strings, computed from the suffix array alone.
func (ix *Index) CommonCount() int {
	first := ix.distinctIn(func(p int) bool { return p < ix.firstLen })
	second := ix.distinctIn(func(p int) bool { return p >= ix.firstLen })
	union := ix.distinctIn(func(int) bool { return true })
	return first + second - union
}
