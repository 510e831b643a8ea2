package nlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{name: "juta with ribu carry-over", input: "3jt400", expected: 3_400_000, ok: true},
		{name: "kilo shorthand", input: "250k", expected: 250_000, ok: true},
		{name: "dotted thousands", input: "2.500.000", expected: 2_500_000, ok: true},
		{name: "plain digits", input: "15000", expected: 15_000, ok: true},
		{name: "decimal juta with comma", input: "2,5jt", expected: 2_500_000, ok: true},
		{name: "decimal juta with word", input: "1,5 juta", expected: 1_500_000, ok: true},
		{name: "ribu word", input: "50 ribu", expected: 50_000, ok: true},
		{name: "rb shorthand", input: "50rb", expected: 50_000, ok: true},
		{name: "currency prefix", input: "Rp 1.500.000", expected: 1_500_000, ok: true},
		{name: "idr prefix", input: "idr 200k", expected: 200_000, ok: true},
		{name: "juta then explicit ribu", input: "1jt 250rb", expected: 1_250_000, ok: true},
		{name: "large trailing number after juta is taken as-is", input: "2jt 1500", expected: 2_001_500, ok: true},
		{name: "letters only", input: "abc", ok: false},
		{name: "zero", input: "0", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int64
		ok       bool
	}{
		{name: "amount embedded in sentence", text: "aku dapat gaji 3jt400 hari ini", expected: 3_400_000, ok: true},
		{name: "bare answer", text: "200k", expected: 200_000, ok: true},
		{name: "ke after number is not a kilo marker", text: "kirim 200 ke tabungan", expected: 200, ok: true},
		{name: "separator format in sentence", text: "catat pengeluaran 1.250.000 dari kebutuhan", expected: 1_250_000, ok: true},
		{name: "no amount", text: "aku mau kirim saldo", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAmount(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
