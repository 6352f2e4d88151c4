package service

import (
	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// Normalize maps a declared transaction type and magnitude to the single
// signed amount stored in the ledger: credits keep their magnitude, debits
// are negated. Total over its domain; zero stays zero for both types.
func Normalize(txType models.TransactionType, magnitude decimal.Decimal) decimal.Decimal {
	if txType == models.TypeDebit {
		return magnitude.Neg()
	}
	return magnitude
}
