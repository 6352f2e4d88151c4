package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"pocketledger/internal/models"
	"pocketledger/internal/service"
	"pocketledger/internal/session"
)

// NewCreateTransactionHandler returns POST /transactions handler. It is the
// only endpoint that bootstraps a session: when the request carries no
// credential a fresh one is minted and sent back with the 201.
func NewCreateTransactionHandler(svc *service.LedgerService, cookie session.CookieConfig, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := req.validate(); len(fields) > 0 {
			writeValidationError(w, fields)
			return
		}

		credential, isNew := session.Ensure(session.Read(r, cookie.Name))

		input := service.CreateTransactionInput{
			Title:  *req.Title,
			Amount: *req.Amount,
			Type:   models.TransactionType(*req.Type),
		}
		if err := svc.CreateTransaction(r.Context(), credential, input); err != nil {
			logger.Error("failed to record transaction", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to record transaction")
			return
		}

		if isNew {
			session.Write(w, cookie, credential)
		}
		w.WriteHeader(http.StatusCreated)
	}
}
