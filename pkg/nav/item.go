package nav

import "github.com/treeline-ui/treeline/pkg/pathmatch"

// Item is one entry in a navigation tree.
type Item struct {
	// Label is the visible text of the entry.
	Label string `toml:"label"`

	// URL is the entry's target path. Entries without a URL render as
	// plain text and never match the location.
	URL string `toml:"url"`

	// ExactMatch requires the location to equal URL instead of merely
	// starting with it.
	ExactMatch bool `toml:"exact_match"`

	// ForcedMatch overrides matching entirely: true forces the entry
	// active, false forces it inactive.
	ForcedMatch *bool `toml:"forced_match"`

	// MatchPaths are extra location prefixes that highlight this entry.
	MatchPaths []string `toml:"match_paths"`

	// ExcludePaths are location prefixes that suppress highlighting.
	ExcludePaths []string `toml:"exclude_paths"`

	// Children are nested entries.
	Children []Item `toml:"children"`
}

// Rule converts the item to its matching rule.
func (it Item) Rule() pathmatch.Rule {
	return pathmatch.Rule{
		URL:          it.URL,
		ExactMatch:   it.ExactMatch,
		ForcedMatch:  it.ForcedMatch,
		MatchPaths:   it.MatchPaths,
		ExcludePaths: it.ExcludePaths,
	}
}

// rules collects the matching rules of a sibling group.
func rules(items []Item) []pathmatch.Rule {
	out := make([]pathmatch.Rule, len(items))
	for i, it := range items {
		out[i] = it.Rule()
	}
	return out
}
