package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecorded is emitted after a ledger append commits.
type TransactionRecorded struct {
	TransactionID string          `json:"transaction_id"`
	SessionID     string          `json:"session_id"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
