// Package menu loads the restaurant menu and filters it by dietary preference.
package menu

import (
	"orderbot/pkg"
)

// Filter returns the dishes visible under preference p, in menu order.
//
// veg / non-veg keep dishes of that type plus dishes typed "all"; "all" keeps
// everything. An unset preference only keeps dishes typed "all", callers are
// expected to gate on the preference before filtering. Unknown dish types
// never match veg or non-veg.
func Filter(m *pkg.Menu, p pkg.Preference) *pkg.Menu {
	var kept []pkg.MenuItem
	for _, item := range m.Items() {
		if includes(item, p) {
			kept = append(kept, item)
		}
	}

	// kept is a subset of a valid menu, so names are already unique
	filtered, _ := pkg.NewMenu(kept)
	return filtered
}

func includes(item pkg.MenuItem, p pkg.Preference) bool {
	if p == pkg.PreferenceAll {
		return true
	}
	if item.Type == pkg.DietAll {
		return true
	}
	if !p.IsSet() {
		return false
	}
	return string(item.Type) == string(p)
}
