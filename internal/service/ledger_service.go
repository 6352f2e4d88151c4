package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pocketledger/internal/models"
	"pocketledger/internal/models/events"
)

// TransactionStore is the persistence contract the ledger requires:
// append-only inserts plus session-scoped reads and the sum aggregate.
type TransactionStore interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetBySession(ctx context.Context, sessionID, transactionID string) (*models.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (decimal.Decimal, error)
}

// EventPublisher emits ledger events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// SessionRegistry records which credentials have been seen, for operator
// inspection only. It is never consulted for authorization.
type SessionRegistry interface {
	Record(ctx context.Context, sessionID string) error
}

// LedgerService implements the session-scoped transaction ledger.
type LedgerService struct {
	store     TransactionStore
	registry  SessionRegistry
	publisher EventPublisher
	logger    *zap.Logger
}

// NewLedgerService builds service. Registry and publisher are optional.
func NewLedgerService(store TransactionStore, registry SessionRegistry, publisher EventPublisher, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		store:     store,
		registry:  registry,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateTransactionInput is a validated create request.
type CreateTransactionInput struct {
	Title  string
	Amount decimal.Decimal
	Type   models.TransactionType
}

// CreateTransaction normalizes the amount and appends a new transaction bound
// to the given session. The append is atomic: on store failure nothing is
// retained, no registry entry is written and no event is published.
func (s *LedgerService) CreateTransaction(ctx context.Context, sessionID string, input CreateTransactionInput) error {
	if sessionID == "" {
		return errors.New("ledger: session id required")
	}

	tx := &models.Transaction{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Amount:    Normalize(input.Type, input.Amount),
		SessionID: sessionID,
	}

	if err := s.store.Insert(ctx, tx); err != nil {
		return err
	}

	if s.registry != nil {
		if err := s.registry.Record(ctx, sessionID); err != nil {
			s.logger.Warn("failed to record session in registry", zap.Error(err))
		}
	}

	if s.publisher != nil {
		event := events.TransactionRecorded{
			TransactionID: tx.ID,
			SessionID:     tx.SessionID,
			Amount:        tx.Amount,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish transaction event", zap.Error(err))
		}
	}

	s.logger.Info("transaction recorded",
		zap.String("transaction_id", tx.ID),
		zap.String("amount", tx.Amount.String()),
	)
	return nil
}

// ListTransactions returns the session's transactions, never nil.
func (s *LedgerService) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	txs, err := s.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// GetTransaction returns the session's transaction by id, nil when absent.
func (s *LedgerService) GetTransaction(ctx context.Context, sessionID, transactionID string) (*models.Transaction, error) {
	return s.store.GetBySession(ctx, sessionID, transactionID)
}

// Balance returns the signed sum over the session's transactions.
func (s *LedgerService) Balance(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	return s.store.SumBySession(ctx, sessionID)
}
