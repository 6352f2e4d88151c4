package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
)

// TransactionRepository persists ledger transactions. The table is
// append-only: no update or delete statements exist here.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository returns repository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Insert appends a new transaction and fills in the server-side timestamp.
func (r *TransactionRepository) Insert(ctx context.Context, tx *models.Transaction) error {
	const query = `
		INSERT INTO transactions (id, title, amount, session_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		tx.ID,
		tx.Title,
		tx.Amount,
		tx.SessionID,
	).Scan(&tx.CreatedAt)
}

// ListBySession returns all transactions owned by the session in insertion order.
func (r *TransactionRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	const query = `
		SELECT id, title, amount, session_id, created_at
		FROM transactions
		WHERE session_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.Title,
			&tx.Amount,
			&tx.SessionID,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetBySession returns the transaction matching both id and owning session,
// or nil when no such row exists. An id owned by another session is
// indistinguishable from a nonexistent one.
func (r *TransactionRepository) GetBySession(ctx context.Context, sessionID, transactionID string) (*models.Transaction, error) {
	const query = `
		SELECT id, title, amount, session_id, created_at
		FROM transactions
		WHERE id = $1 AND session_id = $2
	`
	var tx models.Transaction
	err := r.db.QueryRowContext(ctx, query, transactionID, sessionID).Scan(
		&tx.ID,
		&tx.Title,
		&tx.Amount,
		&tx.SessionID,
		&tx.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// SumBySession returns the signed sum of the session's amounts, zero when
// the session has no transactions.
func (r *TransactionRepository) SumBySession(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE session_id = $1
	`
	var sum decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}
