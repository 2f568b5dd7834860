package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized ledger record, regardless of which source
// layout it came from.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal // positive = spending, negative = payment/credit
	Notes       string
	Vendor      string // canonical merchant label, set after classification
}

// IsSpending reports whether the transaction is a debit (money out).
func (t Transaction) IsSpending() bool {
	return t.Amount.IsPositive()
}
