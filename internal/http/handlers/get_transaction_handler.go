package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pocketledger/internal/http/middleware"
	"pocketledger/internal/models"
	"pocketledger/internal/service"
)

type getTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// NewGetTransactionHandler returns GET /transactions/{id} handler. A missing
// row renders as a null transaction, so an id owned by another session is
// indistinguishable from one that never existed.
func NewGetTransactionHandler(svc *service.LedgerService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session credential")
			return
		}

		id := r.PathValue("id")
		if err := uuid.Validate(id); err != nil {
			writeValidationError(w, map[string]string{"id": "must be a valid UUID"})
			return
		}

		transaction, err := svc.GetTransaction(r.Context(), sessionID, id)
		if err != nil {
			logger.Error("failed to load transaction", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load transaction")
			return
		}

		writeJSON(w, http.StatusOK, getTransactionResponse{Transaction: transaction})
	}
}
