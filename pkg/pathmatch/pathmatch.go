package pathmatch

import "strings"

// Match is the classification of a rule against a location.
type Match uint8

const (
	MatchNone     Match = iota // No criterion matched
	MatchExcluded              // Excluded by override or exclude prefix
	MatchForced                // Forced by override
	MatchURL                   // Location matched the rule URL
	MatchPaths                 // Location matched an extra path prefix
)

// String returns the string representation of the Match.
func (m Match) String() string {
	switch m {
	case MatchNone:
		return "None"
	case MatchExcluded:
		return "Excluded"
	case MatchForced:
		return "Forced"
	case MatchURL:
		return "URL"
	case MatchPaths:
		return "Paths"
	default:
		return "Unknown"
	}
}

// Active returns true for the three matching states.
func (m Match) Active() bool {
	return m == MatchForced || m == MatchURL || m == MatchPaths
}

// Rule describes how a navigation entry relates to the current location.
// The zero value never matches.
type Rule struct {
	// URL is the entry's target path. An entry without a URL has no
	// navigable target and never matches.
	URL string

	// ExactMatch requires the location to equal URL (after
	// normalization) instead of merely starting with it.
	ExactMatch bool

	// ForcedMatch overrides path comparison entirely: true forces a
	// match, false forces an exclusion. Nil means no override.
	ForcedMatch *bool

	// MatchPaths are extra prefixes that match regardless of URL.
	MatchPaths []string

	// ExcludePaths are prefixes that exclude the entry. ForcedMatch
	// true still wins over an exclude hit.
	ExcludePaths []string
}

// Forced is a convenience for building a ForcedMatch override.
func Forced(v bool) *bool { return &v }

// Normalize canonicalizes a path for comparison. The query string and
// fragment are dropped and a trailing slash is appended if absent.
func Normalize(path string) string {
	path, _, _ = strings.Cut(path, "?")
	path, _, _ = strings.Cut(path, "#")
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// Classify evaluates a rule against a location.
//
// Precedence is strict: a missing URL wins over everything, then the
// ForcedMatch override, then exclusion, then MatchPaths, then the URL
// comparison itself.
func Classify(rule Rule, location string) Match {
	if rule.URL == "" {
		return MatchNone
	}
	if rule.ForcedMatch != nil {
		if *rule.ForcedMatch {
			return MatchForced
		}
		return MatchExcluded
	}

	loc := Normalize(location)

	for _, p := range rule.ExcludePaths {
		if strings.HasPrefix(loc, Normalize(p)) {
			return MatchExcluded
		}
	}
	for _, p := range rule.MatchPaths {
		if strings.HasPrefix(loc, Normalize(p)) {
			return MatchPaths
		}
	}

	url := Normalize(rule.URL)
	if rule.ExactMatch {
		if loc == url {
			return MatchURL
		}
		return MatchNone
	}
	if strings.HasPrefix(loc, url) {
		return MatchURL
	}
	return MatchNone
}

// IsActive reports whether a rule should be highlighted: the rule
// itself matches, or any of its sub-rules does. A parent is active
// whenever one of its children is.
func IsActive(rule Rule, subRules []Rule, location string) bool {
	if Classify(rule, location).Active() {
		return true
	}
	for _, sub := range subRules {
		if Classify(sub, location).Active() {
			return true
		}
	}
	return false
}

// SelectBestMatch returns the index of the most specific active rule:
// the one with the longest URL, earliest wins on ties. The second
// return is false when no rule is active.
func SelectBestMatch(rules []Rule, location string) (int, bool) {
	best := -1
	for i, rule := range rules {
		if !Classify(rule, location).Active() {
			continue
		}
		if best == -1 || len(rule.URL) > len(rules[best].URL) {
			best = i
		}
	}
	return best, best != -1
}
