// Package pathmatch decides which navigation entries match a location.
//
// A Rule describes how one entry relates to the current path: a target
// URL, optional prefix lists that force a match or an exclusion, and an
// optional hard override. Classify evaluates a rule against a location
// and returns one of five mutually exclusive results. IsActive and
// SelectBestMatch build on Classify to answer the two questions a
// navigation renderer asks: "should this entry be highlighted at all?"
// and "which single sibling is the most specific match?".
//
// All functions are pure and total. Comparisons work on normalized
// paths: query string and fragment are dropped and a trailing slash is
// enforced, so "/docs" and "/docs/" are equivalent and "/docs-old" is
// not a prefix match of "/docs".
package pathmatch
