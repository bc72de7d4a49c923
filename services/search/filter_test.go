package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	tree := Sequence{
		Text("Apple"),
		Text("Banana"),
		Composite{Children: []Node{Text("Cherry Pie")}},
	}

	filtered, ok := Filter(tree, "an")
	require.True(t, ok)

	seq, ok := filtered.(Sequence)
	require.True(t, ok)
	require.Len(t, seq, 1)
	assert.Equal(t, Text("Banana"), seq[0])
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	tree := Sequence{Text("Apple"), Text("Banana")}
	filtered, ok := Filter(tree, "")
	require.True(t, ok)
	assert.Equal(t, Node(tree), filtered)
}

func TestFilterStructurePreservation(t *testing.T) {
	tree := Composite{Label: "Fruit", Children: []Node{
		Text("Banana"),
		Text("Cherry"),
	}}

	filtered, ok := Filter(tree, "ban")
	require.True(t, ok)

	comp, ok := filtered.(Composite)
	require.True(t, ok)
	assert.Equal(t, "Fruit", comp.Label)
	require.Len(t, comp.Children, 1)
	assert.Equal(t, Text("Banana"), comp.Children[0])
}

func TestFilterCompositeFallbackKeepsWholeNode(t *testing.T) {
	// No child matches "fru", but the flattened text does via the label.
	tree := Composite{Label: "Fruit basket", Children: []Node{
		Text("Banana"),
		Text("Cherry"),
	}}

	filtered, ok := Filter(tree, "fru")
	require.True(t, ok)

	comp, ok := filtered.(Composite)
	require.True(t, ok)
	require.Len(t, comp.Children, 2, "fallback keeps the node whole")
}

func TestFilterDropsNonMatching(t *testing.T) {
	tree := Composite{Label: "Fruit", Children: []Node{Text("Banana")}}
	_, ok := Filter(tree, "zzz")
	assert.False(t, ok)
}

func TestFilterDeepNesting(t *testing.T) {
	tree := Sequence{
		Composite{Label: "a", Children: []Node{
			Composite{Label: "b", Children: []Node{
				Sequence{Text("needle in here"), Text("hay")},
			}},
		}},
		Text("hay"),
	}

	filtered, ok := Filter(tree, "needle")
	require.True(t, ok)

	seq := filtered.(Sequence)
	require.Len(t, seq, 1)
	outer := seq[0].(Composite)
	inner := outer.Children[0].(Composite)
	leafSeq := inner.Children[0].(Sequence)
	require.Len(t, leafSeq, 1)
	assert.Equal(t, Text("needle in here"), leafSeq[0])
}

func TestFilterNilAndUnknownExcluded(t *testing.T) {
	_, ok := Filter(nil, "x")
	assert.False(t, ok)

	seq := Sequence{nil, Text("match x")}
	filtered, ok := Filter(seq, "x")
	require.True(t, ok)
	require.Len(t, filtered.(Sequence), 1)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tree := Composite{Label: "Fruit", Children: []Node{
		Text("Banana"),
		Text("Cherry"),
	}}

	_, _ = Filter(tree, "ban")
	require.Len(t, tree.Children, 2)
}

func TestFlattenText(t *testing.T) {
	tree := Composite{Label: "Fruit", Children: []Node{
		Text("Banana"),
		Sequence{Text("Cherry"), Text("Pie")},
	}}
	assert.Equal(t, "Fruit Banana Cherry Pie", FlattenText(tree))
}

func TestSearchCatalogue(t *testing.T) {
	result := SearchCatalogue("window")
	require.False(t, result.NoResults)

	seq, ok := result.Catalogue.(Sequence)
	require.True(t, ok)
	require.Len(t, seq, 1)
	cleaning := seq[0].(Composite)
	assert.Equal(t, "Cleaning", cleaning.Label)
	require.Len(t, cleaning.Children, 1)
	assert.Equal(t, Text("Window cleaning"), cleaning.Children[0])
}

func TestSearchCatalogueNoResults(t *testing.T) {
	result := SearchCatalogue("quantum plumbing")
	assert.True(t, result.NoResults)
	assert.Nil(t, result.Catalogue)
}
