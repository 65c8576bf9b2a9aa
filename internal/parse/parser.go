package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
)

// rawRecord is the output of the shared extract-and-normalize pass.
type rawRecord struct {
	fields map[string]string
	date   time.Time
	amount float64
}

// parseRecord runs the schema over text and normalizes the date and amount
// fields, short-circuiting on the first failure. Failure priority is fixed:
// missing fields, then bad date, then bad amount.
func parseRecord(schema *Schema, text string) (*rawRecord, error) {
	fields, missing := schema.Extract(text)
	if len(missing) > 0 {
		return nil, &Error{
			Kind:       FailureMissingFields,
			Diagnostic: "Missing fields: " + strings.Join(missing, ", "),
		}
	}

	date, ok := ParseDate(fields[FieldDate])
	if !ok {
		return nil, &Error{
			Kind:       FailureInvalidDate,
			Diagnostic: fmt.Sprintf("Invalid date format: %s\nExpected: DD.MM.YYYY", fields[FieldDate]),
		}
	}

	amount, ok := ParseAmount(fields[FieldAmount])
	if !ok || amount.IsZero() {
		return nil, &Error{
			Kind:       FailureInvalidAmount,
			Diagnostic: "Invalid amount format: " + fields[FieldAmount],
		}
	}

	return &rawRecord{
		fields: fields,
		date:   date,
		amount: amount.InexactFloat64(),
	}, nil
}

// IncomingParser assembles pay-in records from chat text. The chat kind is
// fixed at construction: it is a property of the conversation, not of the
// message.
type IncomingParser struct {
	chatKind model.ChatKind
}

// NewIncomingParser creates a parser for a pay-in conversation.
func NewIncomingParser(chatKind model.ChatKind) *IncomingParser {
	return &IncomingParser{chatKind: chatKind}
}

// Parse returns a populated pay-in record, or a *Error describing the
// first problem found. The caller fills in the message and chat IDs.
func (p *IncomingParser) Parse(text string) (*model.PaymentIn, error) {
	raw, err := parseRecord(IncomingSchema, text)
	if err != nil {
		return nil, err
	}

	return &model.PaymentIn{
		Date:     raw.date,
		Amount:   raw.amount,
		Client:   raw.fields[FieldClient],
		Teacher:  raw.fields[FieldTeacher],
		ChatKind: p.chatKind,
	}, nil
}

// OutgoingParser assembles pay-out records from chat text.
type OutgoingParser struct{}

// NewOutgoingParser creates a parser for the pay-out conversation.
func NewOutgoingParser() *OutgoingParser {
	return &OutgoingParser{}
}

// Parse returns a populated pay-out record, or a *Error describing the
// first problem found.
func (p *OutgoingParser) Parse(text string) (*model.PaymentOut, error) {
	raw, err := parseRecord(OutgoingSchema, text)
	if err != nil {
		return nil, err
	}

	return &model.PaymentOut{
		Date:      raw.date,
		Amount:    raw.amount,
		Category:  raw.fields[FieldCategory],
		Recipient: raw.fields[FieldRecipient],
	}, nil
}
