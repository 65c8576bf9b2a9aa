package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/model"
)

// SavePaymentIn appends a pay-in record and fills in its ID and CreatedAt.
func (s *SQLiteStorage) SavePaymentIn(ctx context.Context, payment *model.PaymentIn) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePaymentIn(payment); err != nil {
		return err
	}

	payment.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payments_in (date, amount, client, teacher, chat_kind, message_id, chat_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, payment.Date, payment.Amount, payment.Client, payment.Teacher,
		string(payment.ChatKind), payment.MessageID, payment.ChatID, payment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pay-in record for message %d already exists", common.ErrDuplicateEntry, payment.MessageID)
		}
		return fmt.Errorf("failed to insert pay-in record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get pay-in record id: %w", err)
	}
	payment.ID = id

	return nil
}

// DeletePaymentInByMessage removes the pay-in record created from the given
// message and returns it. Returns common.ErrNotFound when no record matches.
func (s *SQLiteStorage) DeletePaymentInByMessage(ctx context.Context, chatID, messageID int64) (*model.PaymentIn, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var payment model.PaymentIn
	var kind string
	err = tx.QueryRowContext(ctx, `
		SELECT id, date, amount, client, teacher, chat_kind, message_id, chat_id, created_at
		FROM payments_in
		WHERE chat_id = ? AND message_id = ?
	`, chatID, messageID).Scan(
		&payment.ID,
		&payment.Date,
		&payment.Amount,
		&payment.Client,
		&payment.Teacher,
		&kind,
		&payment.MessageID,
		&payment.ChatID,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up pay-in record: %w", err)
	}
	payment.ChatKind = model.ChatKind(kind)

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments_in WHERE id = ?`, payment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete pay-in record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delete: %w", err)
	}

	return &payment, nil
}

// TotalPaymentsIn returns the sum of all pay-in amounts.
func (s *SQLiteStorage) TotalPaymentsIn(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments_in
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get pay-in total: %w", err)
	}

	return total, nil
}

// CountPaymentsIn returns the total number of pay-in records.
func (s *SQLiteStorage) CountPaymentsIn(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payments_in`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get pay-in count: %w", err)
	}

	return count, nil
}

// LastPaymentIn returns the most recently recorded pay-in, or
// common.ErrNotFound when the table is empty.
func (s *SQLiteStorage) LastPaymentIn(ctx context.Context) (*model.PaymentIn, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var payment model.PaymentIn
	var kind string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, amount, client, teacher, chat_kind, message_id, chat_id, created_at
		FROM payments_in
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(
		&payment.ID,
		&payment.Date,
		&payment.Amount,
		&payment.Client,
		&payment.Teacher,
		&kind,
		&payment.MessageID,
		&payment.ChatID,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last pay-in record: %w", err)
	}
	payment.ChatKind = model.ChatKind(kind)

	return &payment, nil
}

// PaymentsInRange returns pay-in records whose payment date falls inside
// [start, end], most recent first.
func (s *SQLiteStorage) PaymentsInRange(ctx context.Context, start, end time.Time) ([]model.PaymentIn, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v after %v", ErrInvalidDateRange, start, end)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount, client, teacher, chat_kind, message_id, chat_id, created_at
		FROM payments_in
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay-in records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var payments []model.PaymentIn
	for rows.Next() {
		var payment model.PaymentIn
		var kind string
		if err := rows.Scan(
			&payment.ID,
			&payment.Date,
			&payment.Amount,
			&payment.Client,
			&payment.Teacher,
			&kind,
			&payment.MessageID,
			&payment.ChatID,
			&payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay-in record: %w", err)
		}
		payment.ChatKind = model.ChatKind(kind)
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
