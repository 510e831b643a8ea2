// Package textutil provides the text sanitation helpers shared by the
// alias index, the command parser and the dialog prompts.
package textutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// diacriticMap folds the accented letters that show up in informal
// Indonesian chat text (mostly borrowed words) onto their ASCII base.
var diacriticMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
}

// StripDiacritics lowercases the input and folds accented letters to ASCII.
func StripDiacritics(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := diacriticMap[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sanitize lowercases, strips diacritics, drops punctuation (keeping
// hyphens only when keepHyphen is set) and collapses whitespace. This is
// the canonical form both alias generation and pocket matching work on.
func Sanitize(s string, keepHyphen bool) string {
	s = StripDiacritics(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' && keepHyphen:
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return CollapseWhitespace(b.String())
}

// CollapseWhitespace trims and squeezes runs of whitespace to one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsPhrase reports whether phrase occurs in s on word boundaries.
// Both arguments must already be sanitized.
func ContainsPhrase(s, phrase string) bool {
	if phrase == "" {
		return false
	}
	padded := " " + s + " "
	return strings.Contains(padded, " "+phrase+" ")
}

// FormatRupiah renders an integer rupiah amount as "Rp3.400.000" with the
// Indonesian dot thousand grouping.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	digits := decimal.NewFromInt(amount).Abs().String()
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
