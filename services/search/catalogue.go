package search

// Catalogue returns the service category tree offered on the platform.
// The tree is what the searchable combobox filters on the client.
func Catalogue() Node {
	return Sequence{
		Composite{Label: "Cleaning", Children: []Node{
			Text("Home cleaning"),
			Text("Deep cleaning"),
			Text("Window cleaning"),
			Text("Moving-out cleaning"),
		}},
		Composite{Label: "Garden", Children: []Node{
			Text("Lawn mowing"),
			Text("Hedge trimming"),
			Text("Weeding"),
			Text("Snow removal"),
		}},
		Composite{Label: "Moving", Children: []Node{
			Text("Moving help"),
			Text("Furniture assembly"),
			Text("Heavy lifting"),
		}},
		Composite{Label: "Everyday help", Children: []Node{
			Text("Grocery shopping"),
			Text("Errands"),
			Text("Companionship"),
			Text("Dog walking"),
		}},
		Composite{Label: "Handyman", Children: []Node{
			Text("Mounting and hanging"),
			Text("Minor repairs"),
			Text("Painting"),
		}},
	}
}

// CatalogueResult is the filtered catalogue payload. NoResults is set when
// the search term pruned the whole tree away.
type CatalogueResult struct {
	Catalogue Node   `json:"catalogue,omitempty"`
	NoResults bool   `json:"noResults"`
	Term      string `json:"term,omitempty"`
}

// SearchCatalogue filters the category tree by the given term.
func SearchCatalogue(term string) CatalogueResult {
	filtered, ok := Filter(Catalogue(), term)
	if !ok {
		return CatalogueResult{NoResults: true, Term: term}
	}
	return CatalogueResult{Catalogue: filtered, Term: term}
}
