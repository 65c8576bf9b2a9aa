// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
)

// Storage defines the contract for our persistence layer: an append-only
// record store with lookup-by-message and simple aggregate queries.
type Storage interface {
	// Pay-in operations
	SavePaymentIn(ctx context.Context, payment *model.PaymentIn) error
	DeletePaymentInByMessage(ctx context.Context, chatID, messageID int64) (*model.PaymentIn, error)
	TotalPaymentsIn(ctx context.Context) (float64, error)
	CountPaymentsIn(ctx context.Context) (int, error)
	LastPaymentIn(ctx context.Context) (*model.PaymentIn, error)
	PaymentsInRange(ctx context.Context, start, end time.Time) ([]model.PaymentIn, error)

	// Pay-out operations
	SavePaymentOut(ctx context.Context, payment *model.PaymentOut) error
	DeletePaymentOutByMessage(ctx context.Context, chatID, messageID int64) (*model.PaymentOut, error)
	TotalPaymentsOut(ctx context.Context) (float64, error)
	CountPaymentsOut(ctx context.Context) (int, error)
	LastPaymentOut(ctx context.Context) (*model.PaymentOut, error)
	PaymentsOutRange(ctx context.Context, start, end time.Time) ([]model.PaymentOut, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
