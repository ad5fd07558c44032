// Package order holds the per-session list of ordered dishes.
package order

// Ledger is an ordered multiset of dish names. A dish ordered twice appears
// twice. The zero value is an empty ledger ready to use.
type Ledger struct {
	items []string
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a dish to the end of the order
func (l *Ledger) Add(name string) {
	l.items = append(l.items, name)
}

// Remove drops the first occurrence of name. It reports false and leaves
// the ledger untouched when the dish was never ordered.
func (l *Ledger) Remove(name string) bool {
	for i, item := range l.items {
		if item == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the order in insertion order
func (l *Ledger) List() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *Ledger) Len() int {
	return len(l.items)
}
