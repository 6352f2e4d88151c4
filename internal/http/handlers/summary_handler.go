package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pocketledger/internal/http/middleware"
	"pocketledger/internal/service"
)

type summaryResponse struct {
	Summary summaryBody `json:"summary"`
}

type summaryBody struct {
	Amount decimal.Decimal `json:"amount"`
}

// NewSummaryHandler returns GET /transactions/summary handler.
func NewSummaryHandler(svc *service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session credential")
			return
		}

		balance, err := svc.Balance(r.Context(), sessionID)
		if err != nil {
			logger.Error("failed to compute balance", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to compute balance")
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{Summary: summaryBody{Amount: balance}})
	}
}
