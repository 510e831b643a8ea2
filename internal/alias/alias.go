// Package alias expands a pocket's display name into the set of lowercase
// strings a user might type for it: abbreviations, hyphen variants and a
// few domain synonyms. Generation is a deterministic, pure function of the
// display name; the index is rebuilt each turn from the current catalog.
package alias

import (
	"sort"
	"strings"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// abbreviations maps the shorthand users actually type to the canonical
// word it stands for. Both directions are added to the alias set.
var abbreviations = map[string]string{
	"tab":    "tabungan",
	"tabung": "tabungan",
	"keb":    "kebutuhan",
	"kebu":   "kebutuhan",
	"invest": "investasi",
	"inves":  "investasi",
	"drt":    "darurat",
	"hbr":    "hiburan",
}

// expansions is the reverse view: canonical word to its shorthands.
var expansions = map[string][]string{}

func init() {
	for abbr, full := range abbreviations {
		expansions[full] = append(expansions[full], abbr)
	}
	for _, v := range expansions {
		sort.Strings(v)
	}
}

// domainAliases holds hard-coded synonyms for names the original wallet
// ships with out of the box.
var domainAliases = map[string][]string{
	"tabungan":        {"tab", "nabung", "saving"},
	"kebutuhan pokok": {"kebutuhan", "keb", "pokok", "sembako"},
	"e-money":         {"emoney", "e money", "uang elektronik", "saldo digital"},
	"emoney":          {"e-money", "e money", "uang elektronik", "saldo digital"},
}

// AliasesFor returns the matchable alias set for a pocket display name.
// Every entry is sanitized lowercase and at least 2 characters long; the
// result is sorted only to keep output deterministic, no ordering is
// promised to callers.
func AliasesFor(name string) []string {
	set := map[string]struct{}{}
	add := func(s string) {
		s = textutil.CollapseWhitespace(s)
		if len(s) >= 2 {
			set[s] = struct{}{}
		}
	}

	sanitized := textutil.Sanitize(name, true)
	if sanitized == "" {
		return nil
	}
	add(sanitized)

	// Per-token abbreviation expansion, plus a whole-name canonical form.
	tokens := strings.Fields(sanitized)
	canonical := make([]string, len(tokens))
	for i, tok := range tokens {
		canonical[i] = tok
		if full, ok := abbreviations[tok]; ok {
			add(tok)
			add(full)
			canonical[i] = full
		}
		for _, abbr := range expansions[tok] {
			add(abbr)
		}
	}
	if joined := strings.Join(canonical, " "); joined != sanitized {
		add(joined)
	}

	// Hyphen variants: "e-money" also matches "e money" and "emoney".
	if strings.Contains(sanitized, "-") {
		add(strings.ReplaceAll(sanitized, "-", " "))
		add(strings.ReplaceAll(sanitized, "-", ""))
	}

	// Domain-specific synonyms keyed by the sanitized name.
	for _, syn := range domainAliases[sanitized] {
		add(syn)
	}
	if noHyphen := strings.ReplaceAll(sanitized, "-", ""); noHyphen != sanitized {
		for _, syn := range domainAliases[noHyphen] {
			add(syn)
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Index builds the alias view of the current pocket catalog.
func Index(pockets []models.PocketOption) []models.PocketAlias {
	out := make([]models.PocketAlias, 0, len(pockets))
	for _, p := range pockets {
		out = append(out, models.PocketAlias{
			ID:      p.ID,
			Name:    p.Name,
			Aliases: AliasesFor(p.Name),
		})
	}
	return out
}
