package search

import "strings"

// Filter prunes a content tree down to the parts matching the search term.
// An empty term returns the input unchanged. Text leaves survive on a
// case-insensitive substring match. Sequences keep the filtered children
// that survive. Composites first try a structure-preserving prune of their
// children; when nothing survives, the composite's flattened text is probed
// and a match keeps the node whole. Filtering never mutates the input and
// tolerates nil or unrecognized nodes by excluding them.
func Filter(node Node, term string) (Node, bool) {
	if term == "" {
		return node, node != nil
	}
	return filter(node, strings.ToLower(term))
}

func filter(node Node, term string) (Node, bool) {
	switch n := node.(type) {
	case Text:
		if strings.Contains(strings.ToLower(string(n)), term) {
			return n, true
		}
		return nil, false

	case Sequence:
		var kept Sequence
		for _, child := range n {
			if filtered, ok := filter(child, term); ok {
				kept = append(kept, filtered)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		return kept, true

	case Composite:
		var kept []Node
		for _, child := range n.Children {
			if filtered, ok := filter(child, term); ok {
				kept = append(kept, filtered)
			}
		}
		if len(kept) > 0 {
			return Composite{Label: n.Label, Children: kept}, true
		}
		if strings.Contains(strings.ToLower(FlattenText(n)), term) {
			return n, true
		}
		return nil, false

	default:
		return nil, false
	}
}
