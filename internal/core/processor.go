package core

import (
	"fmt"
	"sort"
	"time"

	"orderbot/internal/menu"
	"orderbot/internal/text"
	"orderbot/pkg"
	"orderbot/src/logger"
)

// Interpreter classifies utterances against an ordered rule table and applies
// the winning rule to a session. It holds no per-conversation state, so one
// Interpreter can serve any number of sessions.
type Interpreter struct {
	menu      *pkg.Menu
	rules     []Rule
	normalize text.Normalizer
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithRules replaces the default rule table
func WithRules(rules []Rule) Option {
	return func(i *Interpreter) {
		i.rules = rules
	}
}

// WithNormalizer replaces the default text folding
func WithNormalizer(n text.Normalizer) Option {
	return func(i *Interpreter) {
		i.normalize = n
	}
}

// NewInterpreter creates an interpreter over a read-only menu
func NewInterpreter(m *pkg.Menu, opts ...Option) *Interpreter {
	interp := &Interpreter{
		menu:      m,
		rules:     DefaultRules(),
		normalize: text.Fold,
	}
	for _, opt := range opts {
		opt(interp)
	}
	interp.rules = sortRulesByPriority(interp.rules)
	return interp
}

// Normalize folds text the same way utterances are folded before matching
func (i *Interpreter) Normalize(s string) string {
	return i.normalize(s)
}

// Menu returns the full, unfiltered menu
func (i *Interpreter) Menu() *pkg.Menu {
	return i.menu
}

// Rules returns the rule table in evaluation order
func (i *Interpreter) Rules() []Rule {
	out := make([]Rule, len(i.rules))
	copy(out, i.rules)
	return out
}

// Process interprets one utterance for session s. Exactly one rule is applied.
func (i *Interpreter) Process(s *Session, utterance string) Result {
	start := time.Now()

	turn := &Turn{
		Text:    i.normalize(utterance),
		Session: s,
		interp:  i,
	}

	for _, rule := range i.rules {
		if !rule.Match(turn) {
			continue
		}

		result := rule.Apply(turn)
		result.Rule = rule.Name

		logger.Debug().
			Str("session_id", s.ID).
			Str("rule", rule.Name).
			Str("intent", string(result.Intent)).
			Str("item", result.Item).
			Str("preference", s.Preference.String()).
			Int("order_size", s.Ledger.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("Utterance interpreted")

		return result
	}

	// Only reachable with a custom rule table that has no catch-all
	return Result{Intent: IntentUnknown, Response: msgNotUnderstood, Rule: "none"}
}

func (i *Interpreter) filter(p pkg.Preference) *pkg.Menu {
	return menu.Filter(i.menu, p)
}

// Describe renders the rule table, mostly for debugging
func (i *Interpreter) Describe() []string {
	lines := make([]string, len(i.rules))
	for n, rule := range i.rules {
		lines[n] = fmt.Sprintf("%d. %s (priority %d)", n+1, rule.Name, rule.Priority)
	}
	return lines
}

// sortRulesByPriority orders rules by priority (lower number = higher priority),
// keeping table order between equal priorities
func sortRulesByPriority(rules []Rule) []Rule {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Priority < sorted[b].Priority
	})
	return sorted
}
