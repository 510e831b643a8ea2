package nlparser

import (
	"math"
	"strconv"
	"strings"
)

// amount grammar tokens: alternating numbers and magnitude markers.
type amountTokenKind int

const (
	tokenNumber amountTokenKind = iota
	tokenUnit
)

type amountToken struct {
	kind amountTokenKind
	val  float64 // number value
	mag  float64 // unit magnitude (1e3 or 1e6)
}

var unitReplacer = strings.NewReplacer(
	"juta", "m",
	"ribu", "k",
	"rebu", "k",
	"jt", "m",
	"rb", "k",
)

var currencyReplacer = strings.NewReplacer("rp.", "", "rp", "", "idr", "")

// ParseAmount runs the Indonesian chat amount grammar over one candidate
// substring and returns the rupiah value. It understands separators
// ("2.500.000"), unit shorthands ("250k", "1,5jt") and magnitude
// carry-over ("3jt400" is 3 juta plus 400 ribu). Returns false when no
// positive amount can be read.
func ParseAmount(s string) (int64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = currencyReplacer.Replace(s)
	s = stripThousandSeparators(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = unitReplacer.Replace(s)

	tokens := lexAmount(s)

	var total float64
	var lastMag float64
	seenNumber := false
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.kind == tokenUnit {
			// Bare marker: set the current magnitude without adding.
			lastMag = t.mag
			continue
		}
		seenNumber = true
		if i+1 < len(tokens) && tokens[i+1].kind == tokenUnit {
			mag := tokens[i+1].mag
			total += t.val * mag
			lastMag = mag
			i++
			continue
		}
		// No marker follows: small numbers after a "juta" term are ribu
		// ("3jt400"), everything else counts as-is.
		mult := 1.0
		if lastMag == 1_000_000 && t.val < 1000 {
			mult = 1000
		}
		total += t.val * mult
		lastMag = mult
	}

	if !seenNumber || total <= 0 {
		return 0, false
	}
	return int64(math.Round(total)), true
}

// stripThousandSeparators removes '.' or ',' only when followed by exactly
// three digits, so "2.500.000" collapses but a decimal "2,5" survives.
func stripThousandSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' || c == ',' {
			n := 0
			for j := i + 1; j < len(s) && n < 4 && isDigit(s[j]); j++ {
				n++
			}
			if n == 3 {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lexAmount splits a prepared string into number and unit tokens. Runes
// that belong to neither (stray words around the amount) are skipped.
func lexAmount(s string) []amountToken {
	var tokens []amountToken
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || c == '.':
			j := i
			for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
				j++
			}
			if v, err := strconv.ParseFloat(strings.Trim(s[i:j], "."), 64); err == nil {
				tokens = append(tokens, amountToken{kind: tokenNumber, val: v})
			}
			i = j
		case c == 'm':
			tokens = append(tokens, amountToken{kind: tokenUnit, mag: 1_000_000})
			i++
		case c == 'k':
			tokens = append(tokens, amountToken{kind: tokenUnit, mag: 1000})
			i++
		default:
			i++
		}
	}
	return tokens
}
