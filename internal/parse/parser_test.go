package parse

import (
	"testing"
	"time"

	"github.com/ledgerflow/ledgerbot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomingParser_Parse(t *testing.T) {
	parser := NewIncomingParser(model.ChatKindRU)

	tests := []struct {
		name           string
		text           string
		want           *model.PaymentIn
		wantKind       FailureKind
		wantDiagnostic string
	}{
		{
			name: "valid record round-trips all four fields",
			text: "date: 01.02.2026\namount: 5000\nclient: Ivanov\nteacher: Petrov",
			want: &model.PaymentIn{
				Date:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
				Amount:   5000,
				Client:   "Ivanov",
				Teacher:  "Petrov",
				ChatKind: model.ChatKindRU,
			},
		},
		{
			name: "mixed separators and formats",
			text: "Дата - 2026-02-01\nСумма: 1,234.56\nКлиент: Smith\nTo: Jones",
			want: &model.PaymentIn{
				Date:     time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
				Amount:   1234.56,
				Client:   "Smith",
				Teacher:  "Jones",
				ChatKind: model.ChatKindRU,
			},
		},
		{
			name:           "every missing field is listed",
			text:           "amount: 100",
			wantKind:       FailureMissingFields,
			wantDiagnostic: "Missing fields: date, client, to",
		},
		{
			name:           "missing fields win over the bad date",
			text:           "date: whenever\namount: 100",
			wantKind:       FailureMissingFields,
			wantDiagnostic: "Missing fields: client, to",
		},
		{
			name:           "invalid date",
			text:           "date: 41.02.2026\namount: 5000\nclient: Ivanov\nteacher: Petrov",
			wantKind:       FailureInvalidDate,
			wantDiagnostic: "Invalid date format: 41.02.2026\nExpected: DD.MM.YYYY",
		},
		{
			name:           "bad date is reported before the bad amount",
			text:           "date: nope\namount: also nope\nclient: Ivanov\nteacher: Petrov",
			wantKind:       FailureInvalidDate,
			wantDiagnostic: "Invalid date format: nope\nExpected: DD.MM.YYYY",
		},
		{
			name:           "invalid amount",
			text:           "date: 01.02.2026\namount: lots\nclient: Ivanov\nteacher: Petrov",
			wantKind:       FailureInvalidAmount,
			wantDiagnostic: "Invalid amount format: lots",
		},
		{
			name:           "zero amount is rejected",
			text:           "date: 01.02.2026\namount: 0\nclient: Ivanov\nteacher: Petrov",
			wantKind:       FailureInvalidAmount,
			wantDiagnostic: "Invalid amount format: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.text)
			if tt.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			var parseErr *Error
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantKind, parseErr.Kind)
			assert.Equal(t, tt.wantDiagnostic, parseErr.Diagnostic)
			assert.Nil(t, got)
		})
	}
}

func TestOutgoingParser_Parse(t *testing.T) {
	parser := NewOutgoingParser()

	got, err := parser.Parse("date: 01.02.2026\namount: 3000\ncategory: Salary\nto: Sidorov")
	require.NoError(t, err)
	assert.Equal(t, &model.PaymentOut{
		Date:      time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Amount:    3000,
		Category:  "Salary",
		Recipient: "Sidorov",
	}, got)

	_, err = parser.Parse("category: Salary")
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FailureMissingFields, parseErr.Kind)
	assert.Equal(t, "Missing fields: date, amount, to", parseErr.Diagnostic)
}

func TestParseIsPure(t *testing.T) {
	parser := NewIncomingParser(model.ChatKindENG)
	text := "date: 01.02.2026\namount: 5000\nclient: Ivanov\nteacher: Petrov"

	first, err1 := parser.Parse(text)
	second, err2 := parser.Parse(text)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
