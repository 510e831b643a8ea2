package dialog

import (
	"fmt"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/textutil"
)

// Prompt and summary catalog. All user-facing text is informal Indonesian,
// matching the chat register of the bot.
const (
	msgClarify = `Maaf, aku belum paham maksudnya. Coba tulis misalnya: "aku dapat gaji 3jt400 ke Tabungan", "bayar makan 50rb dari Kebutuhan", atau "pindahin 200k dari Tabungan ke E-Money".`

	msgAskAmount   = "Berapa jumlahnya? (contoh: 50rb, 2,5jt, atau 3jt400)"
	msgAmountRetry = "Jumlahnya belum kebaca. Tulis angkanya ya, contohnya 50rb atau 1.500.000."

	msgAskPocketIncome  = "Masuk ke pocket mana?"
	msgAskPocketExpense = "Diambil dari pocket mana?"
	msgAskPocketFrom    = "Transfer dari pocket mana?"
	msgAskPocketTo      = "Transfer ke pocket mana?"

	msgSamePocket = "Pocket asal dan tujuan tidak boleh sama. Pilih pocket tujuan yang lain ya."

	msgAskNote = `Mau ditambah catatan? Tulis catatannya, atau balas "tidak" untuk lewati.`

	msgConfirmRetry = `Jawab "ya" untuk melanjutkan atau "tidak" untuk membatalkan ya.`
	msgCancelled    = "Oke, dibatalkan. Tidak ada yang dicatat."
	msgIncomplete   = "Hmm, datanya belum lengkap. Coba ulangi dari awal ya."
)

func msgPocketRetry(answer string) string {
	return fmt.Sprintf("Pocket %q tidak ketemu. Pilih salah satu ya.", answer)
}

// confirmSummary renders the full plan in natural language and asks for a
// yes/no.
func confirmSummary(st models.DialogState) string {
	amount := textutil.FormatRupiah(st.Amount)
	note := ""
	if st.Note != "" {
		note = fmt.Sprintf(", catatan: %q", st.Note)
	}
	switch st.Intent {
	case models.IntentIncome:
		return fmt.Sprintf("Catat pemasukan %s ke pocket %s%s. Sudah benar? (ya/tidak)", amount, st.Pocket.Name, note)
	case models.IntentExpense:
		return fmt.Sprintf("Catat pengeluaran %s dari pocket %s%s. Sudah benar? (ya/tidak)", amount, st.Pocket.Name, note)
	case models.IntentTransfer:
		return fmt.Sprintf("Transfer %s dari pocket %s ke pocket %s%s. Sudah benar? (ya/tidak)", amount, st.PocketFrom.Name, st.PocketTo.Name, note)
	}
	return msgIncomplete
}

// executedSummary is the past-tense confirmation after an affirmed plan.
func executedSummary(st models.DialogState) string {
	amount := textutil.FormatRupiah(st.Amount)
	switch st.Intent {
	case models.IntentIncome:
		return fmt.Sprintf("Sip! Pemasukan %s sudah dicatat ke pocket %s.", amount, st.Pocket.Name)
	case models.IntentExpense:
		return fmt.Sprintf("Sip! Pengeluaran %s sudah dicatat dari pocket %s.", amount, st.Pocket.Name)
	case models.IntentTransfer:
		return fmt.Sprintf("Sip! Transfer %s dari pocket %s ke pocket %s sudah dicatat.", amount, st.PocketFrom.Name, st.PocketTo.Name)
	}
	return msgIncomplete
}
