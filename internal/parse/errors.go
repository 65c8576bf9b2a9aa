package parse

// FailureKind classifies why a message was rejected. All failures are
// terminal for the message that produced them.
type FailureKind string

// Failure kinds, checked in this priority order by the parsers.
const (
	FailureMissingFields FailureKind = "missing_fields"
	FailureInvalidDate   FailureKind = "invalid_date"
	FailureInvalidAmount FailureKind = "invalid_amount"
)

// Error is a parse rejection: a failure kind plus the human-readable
// diagnostic sent back to whoever typed the message. It is never used for
// infrastructure failures.
type Error struct {
	Kind       FailureKind
	Diagnostic string
}

func (e *Error) Error() string {
	return e.Diagnostic
}
