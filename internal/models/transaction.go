package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// ledger amounts serialize as bare JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the declared direction of a transaction at creation time.
// It is not stored; only its sign effect on the amount survives.
type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// Valid reports whether t is one of the accepted types.
func (t TransactionType) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Transaction is a single immutable ledger entry owned by one session.
type Transaction struct {
	ID        string          `db:"id" json:"id"`
	Title     string          `db:"title" json:"title"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	SessionID string          `db:"session_id" json:"session_id"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
