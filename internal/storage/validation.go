package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerflow/ledgerbot/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidPayment   = errors.New("invalid payment")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePaymentIn validates a pay-in record before it is stored.
func validatePaymentIn(p *model.PaymentIn) error {
	if p == nil {
		return fmt.Errorf("%w: payment", ErrNilParameter)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidPayment)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}
	if p.Client == "" {
		return fmt.Errorf("%w: missing client", ErrInvalidPayment)
	}
	if p.Teacher == "" {
		return fmt.Errorf("%w: missing teacher", ErrInvalidPayment)
	}
	if p.ChatKind != model.ChatKindRU && p.ChatKind != model.ChatKindENG {
		return fmt.Errorf("%w: unknown chat kind %q", ErrInvalidPayment, p.ChatKind)
	}
	return nil
}

// validatePaymentOut validates a pay-out record before it is stored.
func validatePaymentOut(p *model.PaymentOut) error {
	if p == nil {
		return fmt.Errorf("%w: payment", ErrNilParameter)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidPayment)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidPayment)
	}
	if p.Recipient == "" {
		return fmt.Errorf("%w: missing recipient", ErrInvalidPayment)
	}
	return nil
}
