package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
)

// SavePaymentOut appends a pay-out record and fills in its ID and CreatedAt.
func (s *SQLiteStorage) SavePaymentOut(ctx context.Context, payment *model.PaymentOut) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePaymentOut(payment); err != nil {
		return err
	}

	payment.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payments_out (date, amount, category, recipient, message_id, chat_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, payment.Date, payment.Amount, payment.Category, payment.Recipient,
		payment.MessageID, payment.ChatID, payment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pay-out record for message %d already exists", common.ErrDuplicateEntry, payment.MessageID)
		}
		return fmt.Errorf("failed to insert pay-out record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get pay-out record id: %w", err)
	}
	payment.ID = id

	return nil
}

// DeletePaymentOutByMessage removes the pay-out record created from the
// given message and returns it. Returns common.ErrNotFound when no record
// matches.
func (s *SQLiteStorage) DeletePaymentOutByMessage(ctx context.Context, chatID, messageID int64) (*model.PaymentOut, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var payment model.PaymentOut
	err = tx.QueryRowContext(ctx, `
		SELECT id, date, amount, category, recipient, message_id, chat_id, created_at
		FROM payments_out
		WHERE chat_id = ? AND message_id = ?
	`, chatID, messageID).Scan(
		&payment.ID,
		&payment.Date,
		&payment.Amount,
		&payment.Category,
		&payment.Recipient,
		&payment.MessageID,
		&payment.ChatID,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up pay-out record: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments_out WHERE id = ?`, payment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete pay-out record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delete: %w", err)
	}

	return &payment, nil
}

// TotalPaymentsOut returns the sum of all pay-out amounts.
func (s *SQLiteStorage) TotalPaymentsOut(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments_out
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get pay-out total: %w", err)
	}

	return total, nil
}

// CountPaymentsOut returns the total number of pay-out records.
func (s *SQLiteStorage) CountPaymentsOut(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payments_out`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get pay-out count: %w", err)
	}

	return count, nil
}

// LastPaymentOut returns the most recently recorded pay-out, or
// common.ErrNotFound when the table is empty.
func (s *SQLiteStorage) LastPaymentOut(ctx context.Context) (*model.PaymentOut, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var payment model.PaymentOut
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, amount, category, recipient, message_id, chat_id, created_at
		FROM payments_out
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(
		&payment.ID,
		&payment.Date,
		&payment.Amount,
		&payment.Category,
		&payment.Recipient,
		&payment.MessageID,
		&payment.ChatID,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last pay-out record: %w", err)
	}

	return &payment, nil
}

// PaymentsOutRange returns pay-out records whose payment date falls inside
// [start, end], most recent first.
func (s *SQLiteStorage) PaymentsOutRange(ctx context.Context, start, end time.Time) ([]model.PaymentOut, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v after %v", ErrInvalidDateRange, start, end)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount, category, recipient, message_id, chat_id, created_at
		FROM payments_out
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay-out records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var payments []model.PaymentOut
	for rows.Next() {
		var payment model.PaymentOut
		if err := rows.Scan(
			&payment.ID,
			&payment.Date,
			&payment.Amount,
			&payment.Category,
			&payment.Recipient,
			&payment.MessageID,
			&payment.ChatID,
			&payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay-out record: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
