// Package nav provides the navigation tree component.
//
// A navigation is declared as a tree of Items. Resolve evaluates the
// tree against the current location and annotates every entry with its
// highlight state: Active marks entries on the path to the current
// page, Matches marks the single most specific entry per sibling
// group. Render turns a resolved tree into nav/ul/li markup.
//
// Menu is a small view-model for the collapsible (mobile) state of a
// navigation; it holds the expanded flag and is safe for concurrent
// use. It performs no event listening itself - the surrounding
// application decides when to call Toggle or Dismiss.
package nav
