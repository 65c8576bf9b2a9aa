// Package model defines the core domain models used throughout the application.
package model

import "time"

// ChatKind identifies which monitored conversation produced a record.
type ChatKind string

// Chat kind constants.
const (
	ChatKindRU  ChatKind = "ru"
	ChatKindENG ChatKind = "eng"
)

// PaymentIn is a payment received from a client, attributed to a teacher.
// Records are immutable once stored; (ChatID, MessageID) is the key used
// for cancellation lookups.
type PaymentIn struct {
	Date      time.Time
	CreatedAt time.Time
	Client    string
	Teacher   string
	ChatKind  ChatKind
	ID        int64
	MessageID int64
	ChatID    int64
	Amount    float64
}

// PaymentOut is a payment disbursed to a recipient under a category.
type PaymentOut struct {
	Date      time.Time
	CreatedAt time.Time
	Category  string
	Recipient string
	ID        int64
	MessageID int64
	ChatID    int64
	Amount    float64
}
