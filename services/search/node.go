// Package search filters nested trees of displayable content by a
// case-insensitive substring match, preserving structure for matched
// subtrees. It backs the searchable service catalogue.
package search

import "strings"

// Node is the closed union of renderable content shapes: plain text, a
// sequence of nodes, or a labeled composite with children.
type Node interface {
	isNode()
}

// Text is a plain text leaf.
type Text string

// Sequence is an ordered run of sibling nodes.
type Sequence []Node

// Composite is a labeled grouping node with child content.
type Composite struct {
	Label    string `json:"label"`
	Children []Node `json:"children,omitempty"`
}

func (Text) isNode()      {}
func (Sequence) isNode()  {}
func (Composite) isNode() {}

// FlattenText concatenates all leaf text of a node tree with single-space
// separators, producing the probe string for fallback matching.
func FlattenText(node Node) string {
	var parts []string
	collectText(node, &parts)
	return strings.Join(parts, " ")
}

func collectText(node Node, parts *[]string) {
	switch n := node.(type) {
	case Text:
		if n != "" {
			*parts = append(*parts, string(n))
		}
	case Sequence:
		for _, child := range n {
			collectText(child, parts)
		}
	case Composite:
		if n.Label != "" {
			*parts = append(*parts, n.Label)
		}
		for _, child := range n.Children {
			collectText(child, parts)
		}
	}
}
