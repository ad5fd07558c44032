package pkg

import "fmt"

// Core types shared by the menu, order and interpreter packages

// DietType is the dietary class a dish belongs to
type DietType string

const (
	DietVeg    DietType = "veg"
	DietNonVeg DietType = "non-veg"
	DietAll    DietType = "all" // suitable for every preference
)

// Preference is the user's dietary filter. The zero value is unset.
type Preference string

const (
	PreferenceUnset  Preference = ""
	PreferenceVeg    Preference = "veg"
	PreferenceNonVeg Preference = "non-veg"
	PreferenceAll    Preference = "all" // "mix": every dish is visible
)

// IsSet reports whether a preference has been chosen
func (p Preference) IsSet() bool {
	return p != PreferenceUnset
}

func (p Preference) String() string {
	if p == PreferenceUnset {
		return "unset"
	}
	return string(p)
}

// MenuItem represents a single dish
type MenuItem struct {
	Name    string         `json:"name"`
	Type    DietType       `json:"type"`
	Price   float64        `json:"price,omitempty"`
	Details map[string]any `json:"details,omitempty"` // every other source field, untouched
}

// Menu is an ordered, read-only collection of dishes keyed by name.
// Iteration order is the order the dishes were added (source file order).
type Menu struct {
	items []MenuItem
	index map[string]int
}

// NewMenu builds a menu from items, rejecting empty and duplicate names
func NewMenu(items []MenuItem) (*Menu, error) {
	m := &Menu{
		items: make([]MenuItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item name cannot be empty")
		}
		if _, exists := m.index[item.Name]; exists {
			return nil, fmt.Errorf("duplicate menu item: %s", item.Name)
		}
		m.index[item.Name] = len(m.items)
		m.items = append(m.items, item)
	}
	return m, nil
}

// Len returns the number of dishes
func (m *Menu) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Items returns a copy of the dishes in menu order
func (m *Menu) Items() []MenuItem {
	if m == nil {
		return nil
	}
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Names returns dish names in menu order
func (m *Menu) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.items))
	for i, item := range m.items {
		names[i] = item.Name
	}
	return names
}

// Get looks up a dish by its exact name
func (m *Menu) Get(name string) (MenuItem, bool) {
	if m == nil {
		return MenuItem{}, false
	}
	i, ok := m.index[name]
	if !ok {
		return MenuItem{}, false
	}
	return m.items[i], true
}
