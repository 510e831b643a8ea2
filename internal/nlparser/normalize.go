package nlparser

import (
	"regexp"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// The synonym tables fold the informal verb variants onto one canonical
// marker per intent, so detection only ever tests the markers. Replacement
// is word-bounded and runs on a lowercased, diacritic-free copy; amount,
// pocket and note extraction keep working on the original text.
var synonymRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\b(trf|transfer|transferin|mengirim|kirimkan|kirimin|kirim|pindahkan|pindahin|pindah|oper)\b`), "transfer"},
	{regexp.MustCompile(`\b(gajian|gaji)\b`), "gaji"},
	{regexp.MustCompile(`\b(menerima|nerima|terima|dapetin|dapet|dapat|memperoleh|pendapatan|pemasukan)\b`), "pemasukan"},
	{regexp.MustCompile(`\b(membayar|bayarin|bayar|membeli|beli|belanja|jajan|pengeluaran)\b`), "pengeluaran"},
	{regexp.MustCompile(`\b(jt|juta)\b`), "juta"},
	{regexp.MustCompile(`\b(rb|rebu|ribu)\b`), "ribu"},
}

// Normalize prepares a message for intent detection.
func Normalize(text string) string {
	s := textutil.StripDiacritics(text)
	for _, rule := range synonymRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	return textutil.CollapseWhitespace(s)
}

// Intent keywords tested against the normalized text. Transfer language is
// the most specific, so it wins over income and expense when both appear.
var (
	transferKeywords = []string{"transfer"}
	incomeKeywords   = []string{"pemasukan", "gaji", "masuk"}
	expenseKeywords  = []string{"pengeluaran"}
)
