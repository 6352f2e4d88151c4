package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"pocketledger/internal/http/middleware"
	"pocketledger/internal/models"
	"pocketledger/internal/service"
)

type listTransactionsResponse struct {
	TotalTransactions int                  `json:"totalTransactions"`
	Transactions      []models.Transaction `json:"transactions"`
}

// NewListTransactionsHandler returns GET /transactions handler.
func NewListTransactionsHandler(svc *service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session credential")
			return
		}

		transactions, err := svc.ListTransactions(r.Context(), sessionID)
		if err != nil {
			logger.Error("failed to list transactions", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load transactions")
			return
		}

		// count is derived from the slice, never a second query
		writeJSON(w, http.StatusOK, listTransactionsResponse{
			TotalTransactions: len(transactions),
			Transactions:      transactions,
		})
	}
}
