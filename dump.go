package suffixtree

import (
	"bufio"
	"fmt"
	"io"
)

// WriteEdges writes the node count on the first line, then one line per edge
// in preorder: the parent's preorder number, the string the edge starts in
// (0 or 1), and the edge's [start, end) in that string's own coordinates.
// Edges of the first string are clipped at its sentinel.
func (t *Tree) WriteEdges(w io.Writer, firstLen int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(t.nodes))

	next := 0
	var walk func(id nodeID)
	walk = func(id nodeID) {
		self := next
		next++
		for _, e := range t.nodes[id].edges {
			if e.start < firstLen {
				fmt.Fprintln(bw, self, 0, e.start, min(e.end, firstLen))
			} else {
				fmt.Fprintln(bw, self, 1, e.start-firstLen, e.end-firstLen)
			}
			walk(e.child)
		}
	}
	walk(root)

	return bw.Flush()
}
