package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pocketledger/internal/models"
)

type fakeStore struct {
	mu        sync.Mutex
	txs       []models.Transaction
	insertErr error
}

func (f *fakeStore) Insert(_ context.Context, tx *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	tx.CreatedAt = time.Now().UTC()
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeStore) ListBySession(_ context.Context, sessionID string) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.SessionID == sessionID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeStore) GetBySession(_ context.Context, sessionID, transactionID string) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tx := range f.txs {
		if tx.ID == transactionID && tx.SessionID == sessionID {
			found := tx
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SumBySession(_ context.Context, sessionID string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := decimal.Zero
	for _, tx := range f.txs {
		if tx.SessionID == sessionID {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

type fakeRegistry struct {
	recorded  []string
	recordErr error
}

func (f *fakeRegistry) Record(_ context.Context, sessionID string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, sessionID)
	return nil
}

type fakePublisher struct {
	events []any
}

func (f *fakePublisher) Publish(_ context.Context, event any) error {
	f.events = append(f.events, event)
	return nil
}

func TestCreateTransactionNormalizesAndBindsSession(t *testing.T) {
	store := &fakeStore{}
	svc := NewLedgerService(store, nil, nil, zap.NewNop())

	err := svc.CreateTransaction(context.Background(), "session-a", CreateTransactionInput{
		Title:  "Rent",
		Amount: decimal.NewFromInt(400),
		Type:   models.TypeDebit,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	if len(store.txs) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(store.txs))
	}
	tx := store.txs[0]
	if tx.SessionID != "session-a" {
		t.Fatalf("expected session-a owner, got %s", tx.SessionID)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(-400)) {
		t.Fatalf("expected normalized amount -400, got %s", tx.Amount)
	}
	if err := uuid.Validate(tx.ID); err != nil {
		t.Fatalf("expected UUID transaction id, got %q: %v", tx.ID, err)
	}
}

func TestCreateTransactionRequiresSession(t *testing.T) {
	store := &fakeStore{}
	svc := NewLedgerService(store, nil, nil, zap.NewNop())

	err := svc.CreateTransaction(context.Background(), "", CreateTransactionInput{
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TypeCredit,
	})
	if err == nil {
		t.Fatal("expected error for empty session id")
	}
	if len(store.txs) != 0 {
		t.Fatalf("expected no stored transactions, got %d", len(store.txs))
	}
}

func TestCreateTransactionStoreFailureIsAtomic(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("boom")}
	registry := &fakeRegistry{}
	publisher := &fakePublisher{}
	svc := NewLedgerService(store, registry, publisher, zap.NewNop())

	err := svc.CreateTransaction(context.Background(), "session-a", CreateTransactionInput{
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TypeCredit,
	})
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	if len(registry.recorded) != 0 {
		t.Fatalf("expected no registry entries after failed write, got %d", len(registry.recorded))
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no events after failed write, got %d", len(publisher.events))
	}
}

func TestCreateTransactionRegistryFailureDoesNotFailWrite(t *testing.T) {
	store := &fakeStore{}
	registry := &fakeRegistry{recordErr: errors.New("redis down")}
	svc := NewLedgerService(store, registry, nil, zap.NewNop())

	err := svc.CreateTransaction(context.Background(), "session-a", CreateTransactionInput{
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TypeCredit,
	})
	if err != nil {
		t.Fatalf("registry failure must not fail the write: %v", err)
	}
	if len(store.txs) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(store.txs))
	}
}

func TestCreateTransactionPublishesEvent(t *testing.T) {
	store := &fakeStore{}
	registry := &fakeRegistry{}
	publisher := &fakePublisher{}
	svc := NewLedgerService(store, registry, publisher, zap.NewNop())

	err := svc.CreateTransaction(context.Background(), "session-a", CreateTransactionInput{
		Title:  "Salary",
		Amount: decimal.NewFromInt(1000),
		Type:   models.TypeCredit,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if len(registry.recorded) != 1 || registry.recorded[0] != "session-a" {
		t.Fatalf("expected session-a recorded in registry, got %v", registry.recorded)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
}

func TestListTransactionsNeverNil(t *testing.T) {
	svc := NewLedgerService(&fakeStore{}, nil, nil, zap.NewNop())

	txs, err := svc.ListTransactions(context.Background(), "empty-session")
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if txs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(txs) != 0 {
		t.Fatalf("expected no transactions, got %d", len(txs))
	}
}

func TestBalanceSumsNormalizedAmounts(t *testing.T) {
	store := &fakeStore{}
	svc := NewLedgerService(store, nil, nil, zap.NewNop())

	inputs := []CreateTransactionInput{
		{Title: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeCredit},
		{Title: "Rent", Amount: decimal.NewFromInt(400), Type: models.TypeDebit},
		{Title: "Groceries", Amount: decimal.RequireFromString("59.50"), Type: models.TypeDebit},
	}
	for _, in := range inputs {
		if err := svc.CreateTransaction(context.Background(), "session-a", in); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}

	balance, err := svc.Balance(context.Background(), "session-a")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("540.50")) {
		t.Fatalf("expected balance 540.50, got %s", balance)
	}

	empty, err := svc.Balance(context.Background(), "session-b")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !empty.Equal(decimal.Zero) {
		t.Fatalf("expected zero balance for empty session, got %s", empty)
	}
}
