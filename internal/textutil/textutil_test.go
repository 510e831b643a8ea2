package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		keepHyphen bool
		expected   string
	}{
		{
			name:       "lowercases and collapses whitespace",
			input:      "  Kebutuhan   Pokok ",
			keepHyphen: true,
			expected:   "kebutuhan pokok",
		},
		{
			name:       "keeps hyphen when asked",
			input:      "E-Money",
			keepHyphen: true,
			expected:   "e-money",
		},
		{
			name:       "drops hyphen otherwise",
			input:      "E-Money",
			keepHyphen: false,
			expected:   "e money",
		},
		{
			name:       "strips punctuation and diacritics",
			input:      "Café! (utama)",
			keepHyphen: true,
			expected:   "cafe utama",
		},
		{
			name:       "keeps digits",
			input:      "Pocket 2",
			keepHyphen: false,
			expected:   "pocket 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input, tt.keepHyphen))
		})
	}
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, ContainsPhrase("dari tabungan ke e-money", "dari tabungan"))
	assert.True(t, ContainsPhrase("ke e-money", "e-money"))
	assert.False(t, ContainsPhrase("paket tabungan", "ke tabungan"))
	assert.False(t, ContainsPhrase("tabunganku penuh", "tabungan"))
	assert.False(t, ContainsPhrase("apa saja", ""))
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{3400, "Rp3.400"},
		{200000, "Rp200.000"},
		{3400000, "Rp3.400.000"},
		{1234567890, "Rp1.234.567.890"},
		{-50000, "-Rp50.000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRupiah(tt.amount))
		})
	}
}
