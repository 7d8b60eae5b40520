package suffixtree

// KthCommon returns the common substring of zero-based rank k in
// lexicographic order. ok is false when k is out of [0, CommonCount()).
// Annotate or AnnotateRunes must have run first.
func (t *Tree) KthCommon(k int) (string, bool) {
	if k < 0 || k >= t.CommonCount() {
		return "", false
	}

	var prefix []byte
	cur := root
	start, end := 0, 0

	for {
		// k < t.nodes[cur].common
		descended := false
		for _, e := range t.nodes[cur].edges {
			c := t.nodes[e.child].common
			if k < c {
				prefix = append(prefix, t.text[start:end]...)
				cur, start, end = e.child, e.start, e.end
				descended = true
				break
			}
			k -= c
		}
		if !descended {
			panic("suffixtree: rank escaped annotated subtree")
		}

		span := t.span(start, end)
		if k < span {
			break
		}
		k -= span
	}

	return string(append(prefix, t.text[start:t.cut(start, k)]...)), true
}
