package suffixtree

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8     = errors.New("suffixtree: invalid UTF-8 encoding in input strings")
	ErrEqualSentinels  = errors.New("suffixtree: sentinels must differ")
	ErrSentinelInInput = errors.New("suffixtree: input string contains a sentinel byte")
	ErrInvalidSentinel = errors.New("suffixtree: sentinel is a UTF-8 continuation byte")
)

const (
	// 0xFE and 0xFF never appear in valid UTF-8, so they can terminate
	// the two strings without colliding with their contents.
	firstSentinel  = 0xFE
	secondSentinel = 0xFF
)

// Builder matches the two strings byte for byte unless FoldCase or Normalize
// is set. Either option switches to UTF-8 semantics: inputs must be valid
// UTF-8, only substrings of whole runes are counted, and results are
// substrings of the transformed strings.
type Builder struct {
	first     string
	second    string
	useIndex  bool
	foldCase  bool
	normalize bool
	sentinels [2]byte
}

func NewBuilder(first, second string) *Builder {
	return &Builder{
		first:     first,
		second:    second,
		useIndex:  true,
		sentinels: [2]byte{firstSentinel, secondSentinel},
	}
}

// Skips the suffix array index. Occurrences falls back to scanning both
// strings, and the count cross-check is unavailable.
// Saves the suffix array, LCP array and its RMQ: about 4*|S| extra ints.
func (b *Builder) SkipIndex() *Builder {
	b.useIndex = false
	return b
}

// Makes matching case insensitive by folding both strings.
func (b *Builder) FoldCase() *Builder {
	b.foldCase = true
	return b
}

// Normalizes both strings with NFC before matching.
func (b *Builder) Normalize() *Builder {
	b.normalize = true
	return b
}

// Sentinels overrides the bytes appended to the first and second string.
// Neither may occur in the inputs.
func (b *Builder) Sentinels(first, second byte) *Builder {
	b.sentinels = [2]byte{first, second}
	return b
}

func (b *Builder) utf8Mode() bool {
	return b.foldCase || b.normalize
}

func (b *Builder) Build() (*CommonSubstrings, error) {
	if b.sentinels[0] == b.sentinels[1] {
		return nil, ErrEqualSentinels
	}

	first, second := b.first, b.second
	if b.utf8Mode() {
		if !utf8.RuneStart(b.sentinels[0]) || !utf8.RuneStart(b.sentinels[1]) {
			return nil, ErrInvalidSentinel
		}
		if !utf8.ValidString(first) || !utf8.ValidString(second) {
			return nil, ErrInvalidUTF8
		}
		first = applyTransforms(first, b.foldCase, b.normalize)
		second = applyTransforms(second, b.foldCase, b.normalize)
	}

	if containsByte(first, b.sentinels) || containsByte(second, b.sentinels) {
		return nil, ErrSentinelInInput
	}

	text := concatenate(first, second, b.sentinels)
	firstLen := len(first) + 1

	tree := Build(text)
	if b.utf8Mode() {
		tree.AnnotateRunes(firstLen)
	} else {
		tree.Annotate(firstLen)
	}

	var index *Index
	if b.useIndex {
		index = newIndex(text, firstLen, b.utf8Mode())
	}
	return &CommonSubstrings{
		tree:      tree,
		index:     index,
		first:     first,
		second:    second,
		firstLen:  firstLen,
		foldCase:  b.foldCase,
		normalize: b.normalize,
	}, nil
}

// CommonSubstrings answers rank queries over the distinct substrings shared
// by two strings.
type CommonSubstrings struct {
	tree      *Tree
	index     *Index
	first     string
	second    string
	firstLen  int
	foldCase  bool
	normalize bool
}

func applyTransforms(s string, foldCase bool, normalize bool) string {
	if foldCase {
		s = cases.Fold().String(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return s
}

func containsByte(s string, set [2]byte) bool {
	return strings.IndexByte(s, set[0]) >= 0 || strings.IndexByte(s, set[1]) >= 0
}

func concatenate(first, second string, sentinels [2]byte) []byte {
	text := make([]byte, 0, len(first)+len(second)+2)
	text = append(text, first...)
	text = append(text, sentinels[0])
	text = append(text, second...)
	return append(text, sentinels[1])
}

// Count returns the number of distinct common substrings.
func (c *CommonSubstrings) Count() int {
	return c.tree.CommonCount()
}

// Kth returns the common substring of zero-based rank k in lexicographic
// order. It occurs in both strings as passed to the builder, or in both
// transformed strings when FoldCase or Normalize is set.
func (c *CommonSubstrings) Kth(k int) (string, bool) {
	return c.tree.KthCommon(k)
}

// KthString renders the answer for a one-based rank: the substring itself,
// or "-1" when there is none.
func (c *CommonSubstrings) KthString(rank int) string {
	s, ok := c.tree.KthCommon(rank - 1)
	if !ok {
		return strconv.Itoa(-1)
	}
	return s
}

// Occurrences counts where pattern starts in the first and in the second
// string, after applying the same transforms as the inputs. With transforms
// set, a pattern that is not valid UTF-8 occurs nowhere.
func (c *CommonSubstrings) Occurrences(pattern string) (first, second int) {
	if c.foldCase || c.normalize {
		if !utf8.ValidString(pattern) {
			return 0, 0
		}
		pattern = applyTransforms(pattern, c.foldCase, c.normalize)
	}
	p := []byte(pattern)
	if c.index != nil {
		return c.index.Occurrences(p)
	}

	return countOverlapping(c.first, p), countOverlapping(c.second, p)
}

func countOverlapping(s string, p []byte) int {
	if len(p) == 0 {
		return 0
	}
	n := 0
	for i := 0; ; {
		j := strings.Index(s[i:], string(p))
		if j < 0 {
			return n
		}
		n++
		i += j + 1
	}
}

// WriteEdges writes the suffix tree in the edge listing format of
// (*Tree).WriteEdges.
func (c *CommonSubstrings) WriteEdges(w io.Writer) error {
	return c.tree.WriteEdges(w, c.firstLen)
}

func (c *CommonSubstrings) Tree() *Tree {
	return c.tree
}

// Index returns nil when the builder skipped it.
func (c *CommonSubstrings) Index() *Index {
	return c.index
}
