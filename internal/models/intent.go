package models

// Intent is the coarse classification of what financial action a user's
// message requests. The vocabulary is closed: three intents plus unknown.
type Intent string

const (
	IntentUnknown  Intent = ""
	IntentIncome   Intent = "income"
	IntentExpense  Intent = "expense"
	IntentTransfer Intent = "transfer"
)

// IsKnown reports whether the intent is one of the three supported actions.
func (i Intent) IsKnown() bool {
	switch i {
	case IntentIncome, IntentExpense, IntentTransfer:
		return true
	}
	return false
}

// ParsedEntities is the output of one parse call. All fields are optional
// and mutually consistent with the detected intent. Pocket fields carry the
// display name of the matched pocket, to be resolved against the catalog.
type ParsedEntities struct {
	Amount     int64
	Pocket     string
	PocketFrom string
	PocketTo   string
	Note       string
}
