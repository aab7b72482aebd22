package nav

import "github.com/treeline-ui/treeline/pkg/pathmatch"

// State is an Item annotated with its highlight state for one location.
type State struct {
	Item Item

	// Active marks entries that should be highlighted: the entry's own
	// rule matches the location, or any descendant's does.
	Active bool

	// Matches marks the single most specific entry of a sibling group.
	// At most one sibling carries it.
	Matches bool

	Children []State
}

// Resolve evaluates a navigation tree against a location.
//
// Every entry's own rule is classified with pathmatch.Classify; an
// entry is Active when its own rule matches or any descendant is
// Active. Within each sibling group the best match (longest URL among
// the entries whose own rule matches) receives the Matches flag, so a
// renderer can highlight exactly one entry per level even when several
// share a prefix of the location.
func Resolve(items []Item, location string) []State {
	if len(items) == 0 {
		return nil
	}

	states := make([]State, len(items))
	for i, it := range items {
		states[i] = State{
			Item:     it,
			Active:   pathmatch.Classify(it.Rule(), location).Active(),
			Children: Resolve(it.Children, location),
		}
		for _, child := range states[i].Children {
			if child.Active {
				states[i].Active = true
				break
			}
		}
	}

	if best, ok := pathmatch.SelectBestMatch(rules(items), location); ok {
		states[best].Matches = true
	}

	return states
}
