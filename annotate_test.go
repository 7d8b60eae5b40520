package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func snapshot(tree *Tree) []node {
	nodes := make([]node, len(tree.nodes))
	for i, n := range tree.nodes {
		nodes[i] = node{hasFirst: n.hasFirst, hasSecond: n.hasSecond, common: n.common}
	}
	return nodes
}

func TestAnnotateIdempotent(t *testing.T) {
	cs := buildRaw(t, "abracadabra", "cadabraabra")
	tree := cs.Tree()
	before := snapshot(tree)
	tree.Annotate(cs.firstLen)
	require.Equal(t, before, snapshot(tree))
}

func TestAnnotateFlags(t *testing.T) {
	tree := Build([]byte("ab$ba#"))
	tree.Annotate(3)
	require.Equal(t, 2, tree.CommonCount())

	for id, n := range tree.nodes {
		if len(n.edges) == 0 {
			// a leaf belongs to exactly one string
			require.NotEqual(t, n.hasFirst, n.hasSecond, "leaf %d", id)
			require.Zero(t, n.common)
		}
	}
	require.True(t, tree.nodes[root].hasFirst)
	require.True(t, tree.nodes[root].hasSecond)
}

func TestAnnotateBeforeRun(t *testing.T) {
	tree := Build([]byte("aa$aa#"))
	require.Zero(t, tree.CommonCount())
	_, ok := tree.KthCommon(0)
	require.False(t, ok)

	tree.Annotate(3)
	require.Equal(t, 2, tree.CommonCount())
	got, ok := tree.KthCommon(1)
	require.True(t, ok)
	require.Equal(t, "aa", got)
}

func TestAnnotateNoCommon(t *testing.T) {
	cs := buildRaw(t, "aaaa", "bbbb")
	require.Zero(t, cs.Count())
	require.Zero(t, cs.Index().CommonCount())
	require.Equal(t, "-1", cs.KthString(1))
}
