// Package models defines the domain types shared by the conversational
// finance core: pockets, parsed entities, dialog state, execution plans
// and the undo journal.
package models

// PocketOption is an immutable snapshot of a spendable/receivable bucket.
// The catalog provider supplies a fresh slice each turn; this core never
// owns or mutates pockets.
type PocketOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// PocketAlias is a derived, read-only matching view over a PocketOption.
// Aliases are lowercase sanitized strings (abbreviations, hyphen variants,
// domain synonyms) recomputed whenever the catalog changes. Never persisted.
type PocketAlias struct {
	ID      string
	Name    string
	Aliases []string
}

// HasAlias reports whether the given sanitized string is one of the
// pocket's matchable aliases.
func (p PocketAlias) HasAlias(s string) bool {
	for _, a := range p.Aliases {
		if a == s {
			return true
		}
	}
	return false
}
