// Package uistate holds the ephemeral view flags of a storefront page: whether
// the cart panel and the mobile menu are visible.
//
// Flags are never persisted. A zero Flags value has both panels closed, which
// is also the state after navigation or reload. Opening the cart panel when an
// item is added is a convention of the calling handler, not of this package.
package uistate

// Toggle is a single open/closed flag. The zero value is closed.
type Toggle struct {
	open bool
}

// Open marks the toggle as open.
func (t *Toggle) Open() { t.open = true }

// Close marks the toggle as closed.
func (t *Toggle) Close() { t.open = false }

// Toggle flips the flag and returns the new state.
func (t *Toggle) Toggle() bool {
	t.open = !t.open
	return t.open
}

// IsOpen reports the current state.
func (t Toggle) IsOpen() bool { return t.open }

// Flags groups the two independent view toggles.
type Flags struct {
	CartPanel  Toggle
	MobileMenu Toggle
}

// State is the serializable view of Flags.
type State struct {
	CartPanelOpen  bool `json:"cart_panel_open"`
	MobileMenuOpen bool `json:"mobile_menu_open"`
}

// State returns the current flags as a JSON-friendly value.
func (f Flags) State() State {
	return State{
		CartPanelOpen:  f.CartPanel.IsOpen(),
		MobileMenuOpen: f.MobileMenu.IsOpen(),
	}
}
