package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaExtract(t *testing.T) {
	tests := []struct {
		name        string
		schema      *Schema
		text        string
		wantFields  map[string]string
		wantMissing []string
	}{
		{
			name:   "all incoming fields present",
			schema: IncomingSchema,
			text:   "date: 01.02.2026\namount: 5000\nclient: Ivanov\nteacher: Petrov",
			wantFields: map[string]string{
				"date":   "01.02.2026",
				"amount": "5000",
				"client": "Ivanov",
				"to":     "Petrov",
			},
		},
		{
			name:   "case is preserved for names but labels match any case",
			schema: IncomingSchema,
			text:   "DATE: 01.02.2026\nAMOUNT: 5000\nCLIENT: McGregor\nTEACHER: O'Neil",
			wantFields: map[string]string{
				"date":   "01.02.2026",
				"amount": "5000",
				"client": "McGregor",
				"to":     "O'Neil",
			},
		},
		{
			name:   "russian labels map to the same fields",
			schema: IncomingSchema,
			text:   "дата: 01.02.2026\nсумма: 5000\nклиент: Иванов\nпреподаватель: Петров",
			wantFields: map[string]string{
				"date":   "01.02.2026",
				"amount": "5000",
				"client": "Иванов",
				"to":     "Петров",
			},
		},
		{
			name:        "all missing fields are reported in schema order",
			schema:      IncomingSchema,
			text:        "amount: 100",
			wantFields:  map[string]string{"amount": "100"},
			wantMissing: []string{"date", "client", "to"},
		},
		{
			name:        "nothing recognized",
			schema:      IncomingSchema,
			text:        "see you tomorrow",
			wantMissing: []string{"date", "amount", "client", "to"},
		},
		{
			name:   "outgoing schema reads to as recipient",
			schema: OutgoingSchema,
			text:   "date: 01.02.2026\namount: 3000\ncategory: Salary\nto: Sidorov",
			wantFields: map[string]string{
				"date":     "01.02.2026",
				"amount":   "3000",
				"category": "Salary",
				"to":       "Sidorov",
			},
		},
		{
			name:   "dash separator and padding",
			schema: OutgoingSchema,
			text:   "date -  01.02.2026\namount - 3000\ncategory -  Rent \nto - Landlord",
			wantFields: map[string]string{
				"date":     "01.02.2026",
				"amount":   "3000",
				"category": "Rent",
				"to":       "Landlord",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, missing := tt.schema.Extract(tt.text)
			assert.Equal(t, tt.wantMissing, missing)
			for field, want := range tt.wantFields {
				assert.Equal(t, want, fields[field], "field %s", field)
			}
		})
	}
}
