package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/ledgerflow/ledgerbot/internal/service"
)

// Summary holds the debit/credit totals over all stored records.
type Summary struct {
	TotalIncoming float64
	TotalOutgoing float64
	IncomingCount int
	OutgoingCount int
}

// Balance returns incoming minus outgoing.
func (s Summary) Balance() float64 {
	return s.TotalIncoming - s.TotalOutgoing
}

// Service answers the admin menu's report queries from storage.
type Service struct {
	store service.Storage
}

// NewService creates a report service over the given store.
func NewService(store service.Storage) *Service {
	return &Service{store: store}
}

// DebitCredit returns totals and counts for both record kinds.
func (s *Service) DebitCredit(ctx context.Context) (*Summary, error) {
	totalIn, err := s.store.TotalPaymentsIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay-in total: %w", err)
	}
	totalOut, err := s.store.TotalPaymentsOut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay-out total: %w", err)
	}
	countIn, err := s.store.CountPaymentsIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay-in count: %w", err)
	}
	countOut, err := s.store.CountPaymentsOut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay-out count: %w", err)
	}

	return &Summary{
		TotalIncoming: totalIn,
		TotalOutgoing: totalOut,
		IncomingCount: countIn,
		OutgoingCount: countOut,
	}, nil
}

// LastIncoming returns the most recent pay-in record, or common.ErrNotFound.
func (s *Service) LastIncoming(ctx context.Context) (*model.PaymentIn, error) {
	return s.store.LastPaymentIn(ctx)
}

// LastOutgoing returns the most recent pay-out record, or common.ErrNotFound.
func (s *Service) LastOutgoing(ctx context.Context) (*model.PaymentOut, error) {
	return s.store.LastPaymentOut(ctx)
}

// PeriodRecords returns both record kinds for a reporting period.
func (s *Service) PeriodRecords(ctx context.Context, start, end time.Time) ([]model.PaymentIn, []model.PaymentOut, error) {
	incoming, err := s.store.PaymentsInRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query pay-in records: %w", err)
	}
	outgoing, err := s.store.PaymentsOutRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query pay-out records: %w", err)
	}
	return incoming, outgoing, nil
}
