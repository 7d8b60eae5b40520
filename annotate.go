package suffixtree

import "unicode/utf8"

// Annotate marks, for every node, whether its subtree holds suffixes of the
// first string, of the second string, or both, and counts the distinct
// substrings common to both strings that end on or below each node's incoming
// edge. firstLen is the length of the first string including its sentinel.
//
// Annotate resets previous results, so calling it again yields the same counts.
func (t *Tree) Annotate(firstLen int) {
	t.runes = false
	t.annotate(root, 0, 0, firstLen, true)
}

// AnnotateRunes is Annotate for UTF-8 text: only substrings made of whole
// runes are counted and ranked.
func (t *Tree) AnnotateRunes(firstLen int) {
	t.runes = true
	t.annotate(root, 0, 0, firstLen, true)
}

// span counts the substrings ending inside the edge text[start:end), that
// is the lengths whose next byte starts a rune in rune mode.
func (t *Tree) span(start, end int) int {
	if !t.runes {
		return end - start
	}
	n := 0
	for j := start + 1; j <= end; j++ {
		if utf8.RuneStart(t.text[j]) {
			n++
		}
	}
	return n
}

// cut returns the end of the (k+1)-th substring counted by span.
func (t *Tree) cut(start, k int) int {
	if !t.runes {
		return start + k + 1
	}
	for j := start + 1; ; j++ {
		if utf8.RuneStart(t.text[j]) {
			if k == 0 {
				return j
			}
			k--
		}
	}
}

// aligned is false below root edges that start inside a rune.
func (t *Tree) annotate(id nodeID, start, end, firstLen int, aligned bool) (bool, bool) {
	n := &t.nodes[id]
	n.common = 0
	first, second := false, false

	for _, e := range n.edges {
		child := &t.nodes[e.child]
		if len(child.edges) == 0 {
			child.hasFirst = e.start < firstLen
			child.hasSecond = !child.hasFirst
			child.common = 0
			first = first || child.hasFirst
			second = second || child.hasSecond
			continue
		}

		childAligned := aligned
		if id == root && t.runes {
			childAligned = utf8.RuneStart(e.label)
		}
		f, s := t.annotate(e.child, e.start, e.end, firstLen, childAligned)
		first = first || f
		second = second || s
		if f && s {
			n.common += child.common
		}
	}

	if id != root && aligned && first && second {
		n.common += t.span(start, end)
	}
	n.hasFirst, n.hasSecond = first, second
	return first, second
}

// CommonCount returns the number of distinct substrings shared by both
// strings. It is zero until Annotate has run.
func (t *Tree) CommonCount() int {
	return t.nodes[root].common
}
