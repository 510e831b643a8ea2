package models

import "github.com/shopspring/decimal"

// TransactionResult is the ledger's answer to a single-sided mutation.
// Balances are decimal rupiah; command amounts stay integer minor units.
type TransactionResult struct {
	TransactionID      string
	PocketBalanceAfter decimal.Decimal
	TotalBalanceAfter  decimal.Decimal
}

// TransferResult is the ledger's answer to an atomic two-sided transfer.
type TransferResult struct {
	TransactionIDs   [2]string
	FromBalanceAfter decimal.Decimal
	ToBalanceAfter   decimal.Decimal
}

// DeleteResult is the ledger's answer to deleting a transaction, with the
// balance effect already reversed.
type DeleteResult struct {
	PocketBalanceAfter decimal.Decimal
	TotalBalanceAfter  decimal.Decimal
}
