package suffixtree

import "sort"

type nodeID int32

const (
	root nodeID = 0
	none nodeID = -1

	// openEnd marks a leaf edge that still grows with the text read so far.
	openEnd = -1
)

// edge labels text[start:end). end == openEnd until construction finishes.
type edge struct {
	label byte
	start int
	end   int
	child nodeID
}

type node struct {
	// sorted by label
	edges []edge
	link  nodeID

	hasFirst  bool
	hasSecond bool
	common    int
}

// Tree is a suffix tree built with Ukkonen's algorithm. Nodes live in an
// arena and refer to each other by index.
type Tree struct {
	text  []byte
	nodes []node
	// set by AnnotateRunes
	runes bool
}

type activePoint struct {
	node nodeID
	// c is the label of the active edge, only meaningful when length > 0.
	c      byte
	length int
}

type builder struct {
	t         *Tree
	ap        activePoint
	remainder int
}

// Build constructs the suffix tree of text. The last byte of text must not
// occur anywhere else for every suffix to end on its own leaf.
func Build(text []byte) *Tree {
	t := &Tree{
		text:  text,
		nodes: make([]node, 1, 2*len(text)+1),
	}
	t.nodes[root].link = none

	b := builder{t: t, ap: activePoint{node: root}}
	for i := range text {
		b.extend(i)
	}
	t.finish()
	return t
}

func (t *Tree) newNode() nodeID {
	t.nodes = append(t.nodes, node{link: none})
	return nodeID(len(t.nodes) - 1)
}

func (t *Tree) find(id nodeID, c byte) (int, bool) {
	edges := t.nodes[id].edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].label >= c })
	return i, i < len(edges) && edges[i].label == c
}

func (t *Tree) edge(id nodeID, c byte) *edge {
	i, ok := t.find(id, c)
	if !ok {
		panic("suffixtree: missing transition on active edge")
	}
	return &t.nodes[id].edges[i]
}

func (t *Tree) addEdge(id nodeID, e edge) {
	i, ok := t.find(id, e.label)
	if ok {
		panic("suffixtree: duplicate transition")
	}
	n := &t.nodes[id]
	n.edges = append(n.edges, edge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = e
}

func (b *builder) needSplit(c byte) bool {
	if b.ap.length > 0 {
		e := b.t.edge(b.ap.node, b.ap.c)
		return b.t.text[e.start+b.ap.length] != c
	}
	_, ok := b.t.find(b.ap.node, c)
	return !ok
}

// extend adds text[i] to the tree.
func (b *builder) extend(i int) {
	t := b.t
	c := t.text[i]
	b.remainder++
	prev := none

	for b.remainder > 0 {
		if !b.needSplit(c) {
			// text[i] already continues the active point.
			if b.ap.length == 0 {
				b.ap.c = c
			}
			b.ap.length++
			if prev != none && b.ap.node != root {
				t.nodes[prev].link = b.ap.node
			}
			b.canonize(i)
			return
		}

		if b.ap.length > 0 {
			e := t.edge(b.ap.node, b.ap.c)
			split := e.start + b.ap.length
			tail := edge{label: t.text[split], start: split, end: e.end, child: e.child}
			e.end = split

			// newNode may move the arena, so e is not used past this point.
			mid := t.newNode()
			t.edge(b.ap.node, b.ap.c).child = mid
			t.addEdge(mid, tail)
			t.addEdge(mid, edge{label: c, start: i, end: openEnd, child: t.newNode()})

			if prev != none {
				t.nodes[prev].link = mid
			}
			prev = mid
		} else {
			t.addEdge(b.ap.node, edge{label: c, start: i, end: openEnd, child: t.newNode()})
			if prev != none && b.ap.node != root {
				t.nodes[prev].link = b.ap.node
			}
			prev = none
		}

		b.remainder--

		if b.ap.node == root {
			if b.ap.length > 0 {
				b.ap.length--
			}
			if b.ap.length > 0 {
				b.ap.c = t.text[i-b.remainder+1]
			}
		} else if link := t.nodes[b.ap.node].link; link != none {
			b.ap.node = link
		} else {
			b.ap.node = root
		}
		b.canonize(i)
	}
}

// canonize walks the active point down until its length fits on the active
// edge, landing on a node when it ends exactly at an edge boundary.
func (b *builder) canonize(i int) {
	t := b.t
	for b.ap.length > 0 {
		e := t.edge(b.ap.node, b.ap.c)
		if e.end == openEnd {
			return
		}
		l := e.end - e.start
		switch {
		case b.ap.length > l:
			b.ap.c = t.text[i-b.ap.length+l]
			b.ap.node = e.child
			b.ap.length -= l
		case b.ap.length == l:
			b.ap.node = e.child
			b.ap.length = 0
		default:
			return
		}
	}
}

func (t *Tree) finish() {
	for id := range t.nodes {
		edges := t.nodes[id].edges
		for j := range edges {
			if edges[j].end == openEnd {
				edges[j].end = len(t.text)
			}
		}
	}
}

// NodeCount returns the number of nodes, root and leaves included.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// LeafCount returns the number of leaves, one per suffix of the text.
func (t *Tree) LeafCount() int {
	leaves := 0
	for i := range t.nodes {
		if len(t.nodes[i].edges) == 0 {
			leaves++
		}
	}
	return leaves
}
