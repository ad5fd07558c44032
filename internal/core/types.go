package core

import (
	"strings"
	"time"

	"orderbot/internal/order"
	"orderbot/pkg"

	"github.com/google/uuid"
)

// Intent names what a turn was classified as
type Intent string

const (
	IntentSetPreference  Intent = "set_preference"
	IntentNeedPreference Intent = "need_preference"
	IntentShowMenu       Intent = "show_menu"
	IntentAddItem        Intent = "add_item"
	IntentRemoveItem     Intent = "remove_item"
	IntentShowOrder      Intent = "show_order"
	IntentFarewell       Intent = "farewell"
	IntentUnknown        Intent = "unknown"
)

// Session is the mutable state of one conversation. It is created when the
// conversation starts and dropped when it ends; only the Interpreter mutates it.
type Session struct {
	ID         string
	Preference pkg.Preference
	Ledger     *order.Ledger
	CreatedAt  time.Time
}

// NewSession starts a session with no preference and an empty order
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Ledger:    order.NewLedger(),
		CreatedAt: time.Now(),
	}
}

// Result is the outcome of one interpreted utterance
type Result struct {
	Intent   Intent `json:"intent"`
	Response string `json:"response"`
	Item     string `json:"item,omitempty"` // dish added or removed, if any
	Done     bool   `json:"done"`           // the conversation should end
	Rule     string `json:"rule"`
}

// Turn is what a rule sees: the normalized utterance plus session and menu access
type Turn struct {
	Text    string
	Session *Session

	interp   *Interpreter
	filtered *pkg.Menu
}

// Filtered returns the menu under the session's current preference.
// It is computed once per turn.
func (t *Turn) Filtered() *pkg.Menu {
	if t.filtered == nil {
		t.filtered = t.interp.filter(t.Session.Preference)
	}
	return t.filtered
}

// Mentions returns the first of names whose normalized form occurs in the
// utterance. Matching is by substring, so a dish whose name is part of
// another dish name can shadow it.
func (t *Turn) Mentions(names []string) (string, bool) {
	for _, name := range names {
		folded := t.interp.normalize(name)
		if folded != "" && strings.Contains(t.Text, folded) {
			return name, true
		}
	}
	return "", false
}

// Rule is one entry of the ordered classification table.
// Lower Priority is evaluated first; the first rule whose Match returns true wins.
type Rule struct {
	Name     string
	Priority int
	Match    func(t *Turn) bool
	Apply    func(t *Turn) Result
}
