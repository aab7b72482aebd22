package nav

import "sync"

// Menu holds the collapsible state of a navigation tree.
//
// The zero expanded state is collapsed, matching the mobile-first
// default. Callers wire Toggle to their menu button and Dismiss to
// navigation or click-away events.
type Menu struct {
	mu       sync.Mutex
	items    []Item
	expanded bool
}

// NewMenu creates a Menu over the given items.
func NewMenu(items []Item) *Menu {
	return &Menu{items: items}
}

// Items returns the navigation entries.
func (m *Menu) Items() []Item {
	return m.items
}

// Expanded reports whether the menu is currently expanded.
func (m *Menu) Expanded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expanded
}

// Toggle flips the expanded state and returns the new value.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expanded = !m.expanded
	return m.expanded
}

// Expand opens the menu.
func (m *Menu) Expand() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expanded = true
}

// Collapse closes the menu.
func (m *Menu) Collapse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expanded = false
}

// Dismiss closes the menu after a navigation or click outside it.
// Alias of Collapse, named for the caller's intent.
func (m *Menu) Dismiss() {
	m.Collapse()
}

// Resolve evaluates the menu's items against a location.
func (m *Menu) Resolve(location string) []State {
	return Resolve(m.items, location)
}
