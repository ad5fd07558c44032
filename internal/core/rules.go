package core

import (
	"orderbot/internal/text"
	"orderbot/pkg"
)

// Trigger phrases, already in normalized form
var (
	nonVegPhrases   = []string{"non-veg", "non-vegetarian"}
	vegPhrases      = []string{"veg", "vegetarian"}
	mixPhrases      = []string{"mix"}
	menuPhrases     = []string{"menu"}
	addPhrases      = []string{"order", "add"}
	removePhrases   = []string{"remove"}
	showPhrases     = []string{"show order", "what's my order"}
	farewellPhrases = []string{"thank you", "bye"}
)

// DefaultRules returns the classification table in priority order.
//
// The non-veg check runs before the veg check because "veg" is a substring of
// "non-veg". "show order" and "what's my order" also contain "order", so the
// add rule answers them first; the show-order rule only fires for phrasings a
// custom rule table routes to it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "preference",
			Priority: 1,
			Match: func(t *Turn) bool {
				return text.ContainsAny(t.Text, nonVegPhrases...) ||
					text.ContainsAny(t.Text, vegPhrases...) ||
					text.ContainsAny(t.Text, mixPhrases...)
			},
			Apply: setPreference,
		},
		{
			Name:     "preference_gate",
			Priority: 2,
			Match: func(t *Turn) bool {
				return !t.Session.Preference.IsSet()
			},
			Apply: func(t *Turn) Result {
				return Result{Intent: IntentNeedPreference, Response: msgNeedPreference}
			},
		},
		{
			Name:     "show_menu",
			Priority: 3,
			Match:    phraseMatch(menuPhrases),
			Apply: func(t *Turn) Result {
				return Result{Intent: IntentShowMenu, Response: menuResponse(t.Filtered().Names())}
			},
		},
		{
			Name:     "add_item",
			Priority: 4,
			Match:    phraseMatch(addPhrases),
			Apply:    addItem,
		},
		{
			Name:     "remove_item",
			Priority: 5,
			Match:    phraseMatch(removePhrases),
			Apply:    removeItem,
		},
		{
			Name:     "show_order",
			Priority: 6,
			Match:    phraseMatch(showPhrases),
			Apply: func(t *Turn) Result {
				return Result{Intent: IntentShowOrder, Response: orderResponse(t.Session.Ledger.List())}
			},
		},
		{
			Name:     "farewell",
			Priority: 7,
			Match:    phraseMatch(farewellPhrases),
			Apply: func(t *Turn) Result {
				return Result{Intent: IntentFarewell, Response: farewellResponse(t.Session.Ledger.List()), Done: true}
			},
		},
		{
			Name:     "fallback",
			Priority: 8,
			Match:    func(t *Turn) bool { return true },
			Apply: func(t *Turn) Result {
				return Result{Intent: IntentUnknown, Response: msgNotUnderstood}
			},
		},
	}
}

func phraseMatch(phrases []string) func(t *Turn) bool {
	return func(t *Turn) bool {
		return text.ContainsAny(t.Text, phrases...)
	}
}

func setPreference(t *Turn) Result {
	var pref pkg.Preference
	var response string

	switch {
	case text.ContainsAny(t.Text, nonVegPhrases...):
		pref, response = pkg.PreferenceNonVeg, msgNonVegSet
	case text.ContainsAny(t.Text, vegPhrases...):
		pref, response = pkg.PreferenceVeg, msgVegSet
	default:
		pref, response = pkg.PreferenceAll, msgMixSet
	}

	t.Session.Preference = pref
	return Result{Intent: IntentSetPreference, Response: response}
}

func addItem(t *Turn) Result {
	item, ok := t.Mentions(t.Filtered().Names())
	if !ok {
		return Result{Intent: IntentAddItem, Response: msgUnknownDish}
	}

	t.Session.Ledger.Add(item)
	return Result{Intent: IntentAddItem, Response: addedResponse(item), Item: item}
}

// removeItem searches the current order, not the menu
func removeItem(t *Turn) Result {
	item, ok := t.Mentions(t.Session.Ledger.List())
	if !ok {
		return Result{Intent: IntentRemoveItem, Response: msgUnknownRemoval}
	}

	t.Session.Ledger.Remove(item)
	return Result{Intent: IntentRemoveItem, Response: removedResponse(item), Item: item}
}
