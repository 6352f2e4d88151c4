package handlers

import (
	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// createTransactionRequest is the create payload. Pointer fields distinguish
// absent from zero-valued input.
type createTransactionRequest struct {
	Title  *string          `json:"title"`
	Amount *decimal.Decimal `json:"amount"`
	Type   *string          `json:"type"`
}

// validate checks the payload against the create schema and returns
// field-level errors, empty on success. It is the only validation boundary:
// inputs that pass reach the service untouched.
func (req createTransactionRequest) validate() map[string]string {
	fields := make(map[string]string)

	if req.Title == nil || *req.Title == "" {
		fields["title"] = "required"
	}

	if req.Amount == nil {
		fields["amount"] = "required"
	} else if req.Amount.IsNegative() {
		fields["amount"] = "must not be negative"
	}

	if req.Type == nil {
		fields["type"] = "required"
	} else if !models.TransactionType(*req.Type).Valid() {
		fields["type"] = `must be "credit" or "debit"`
	}

	return fields
}
