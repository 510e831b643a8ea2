// Package nlparser turns one free-form Indonesian chat message into an
// intent plus extracted entities, against a closed three-intent grammar
// (income, expense, transfer). Parsing is pure and stateless: the same
// text and pocket catalog always produce the same result.
package nlparser

import (
	"regexp"
	"strings"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// Result is the output of one parse call. Missing lists the required
// fields that could not be resolved; it is diagnostic only — the dialog
// machine derives its own missing-field list for control flow.
type Result struct {
	Intent   models.Intent
	Entities models.ParsedEntities
	Missing  []string
}

// amountPattern picks numeric-unit runs out of the original text: digits,
// thousand separators and optional unit suffixes, including carry-over
// runs like "3jt400". The trailing non-letter after a unit keeps "ke"
// from being read as a kilo marker.
var amountPattern = regexp.MustCompile(`(?i)(?:rp\.?\s*|idr\s*)?\d[\d.,]*(?:\s*(?:juta|ribu|rebu|jt|rb|k)(?:$|[^a-z])(?:\s*\d[\d.,]*)?)*`)

// notePattern captures free text after one of the note prepositions.
var notePattern = regexp.MustCompile(`(?i)\b(?:buat|untuk|karena|biar)\s+(.+)$`)

// Parse analyses one message against the current pocket catalog.
func Parse(text string, pockets []models.PocketAlias) Result {
	res := Result{Intent: detectIntent(Normalize(text))}
	if !res.Intent.IsKnown() {
		res.Missing = []string{"intent"}
		return res
	}

	if amount, ok := ExtractAmount(text); ok {
		res.Entities.Amount = amount
	}

	sanitized := textutil.Sanitize(text, true)
	switch res.Intent {
	case models.IntentIncome:
		if p := findPocket(sanitized, pockets, []string{"ke", "masuk"}, ""); p != nil {
			res.Entities.Pocket = p.Name
		}
	case models.IntentExpense:
		if p := findPocket(sanitized, pockets, []string{"dari"}, ""); p != nil {
			res.Entities.Pocket = p.Name
		}
	case models.IntentTransfer:
		var fromID string
		if p := findPocket(sanitized, pockets, []string{"dari"}, ""); p != nil {
			res.Entities.PocketFrom = p.Name
			fromID = p.ID
		}
		if p := findPocket(sanitized, pockets, []string{"ke"}, fromID); p != nil {
			res.Entities.PocketTo = p.Name
		}
	}

	if m := notePattern.FindStringSubmatch(text); m != nil {
		res.Entities.Note = strings.TrimRight(strings.TrimSpace(m[1]), " .,!?;:")
	}

	res.Missing = missingFields(res.Intent, res.Entities)
	return res
}

// ExtractAmount scans the original (non-normalized) text for amount
// candidates and returns the first one the grammar accepts.
func ExtractAmount(text string) (int64, bool) {
	for _, candidate := range amountPattern.FindAllString(text, -1) {
		if v, ok := ParseAmount(candidate); ok {
			return v, true
		}
	}
	return 0, false
}

// ResolvePocket interprets text as a direct answer naming one pocket: an
// exact alias match wins, otherwise any alias mentioned inside the answer.
// excludeID skips the pocket already bound to the opposite transfer slot.
func ResolvePocket(text string, pockets []models.PocketAlias, excludeID string) *models.PocketOption {
	sanitized := textutil.Sanitize(text, true)
	if sanitized == "" {
		return nil
	}
	for i := range pockets {
		p := pockets[i]
		if p.ID == excludeID {
			continue
		}
		if p.HasAlias(sanitized) {
			return &models.PocketOption{ID: p.ID, Name: p.Name}
		}
	}
	return matchPocket(sanitized, pockets, nil, excludeID)
}

func detectIntent(normalized string) models.Intent {
	switch {
	case containsAnyWord(normalized, transferKeywords):
		return models.IntentTransfer
	case containsAnyWord(normalized, incomeKeywords):
		return models.IntentIncome
	case containsAnyWord(normalized, expenseKeywords):
		return models.IntentExpense
	}
	return models.IntentUnknown
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if textutil.ContainsPhrase(s, w) {
			return true
		}
	}
	return false
}

// findPocket resolves a pocket mention in sanitized text. Aliases preceded
// by one of the keywords win; failing that any mention anywhere counts.
// The longest matching alias decides ties, so "tabungan haji" beats
// "tabungan" when both pockets exist. excludeID skips the pocket already
// consumed by the opposite transfer slot.
func findPocket(sanitized string, pockets []models.PocketAlias, keywords []string, excludeID string) *models.PocketOption {
	if p := matchPocket(sanitized, pockets, keywords, excludeID); p != nil {
		return p
	}
	return matchPocket(sanitized, pockets, nil, excludeID)
}

func matchPocket(sanitized string, pockets []models.PocketAlias, keywords []string, excludeID string) *models.PocketOption {
	var best *models.PocketOption
	bestLen := 0
	for i := range pockets {
		p := pockets[i]
		if p.ID == excludeID {
			continue
		}
		for _, a := range p.Aliases {
			if len(a) <= bestLen {
				continue
			}
			if keywords == nil {
				if !textutil.ContainsPhrase(sanitized, a) {
					continue
				}
			} else if !phrasePrecededBy(sanitized, a, keywords) {
				continue
			}
			best = &models.PocketOption{ID: p.ID, Name: p.Name}
			bestLen = len(a)
		}
	}
	return best
}

func phrasePrecededBy(sanitized, phrase string, keywords []string) bool {
	for _, kw := range keywords {
		if textutil.ContainsPhrase(sanitized, kw+" "+phrase) {
			return true
		}
	}
	return false
}

func missingFields(intent models.Intent, e models.ParsedEntities) []string {
	var missing []string
	if e.Amount <= 0 {
		missing = append(missing, "amount")
	}
	switch intent {
	case models.IntentTransfer:
		if e.PocketFrom == "" {
			missing = append(missing, "pocket_from")
		}
		if e.PocketTo == "" {
			missing = append(missing, "pocket_to")
		}
	default:
		if e.Pocket == "" {
			missing = append(missing, "pocket")
		}
	}
	return missing
}
