// Package parse turns free-text chat messages into validated payment
// records. The pipeline is classify -> extract -> normalize -> assemble;
// every step is pure and safe for concurrent use.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// Field names used in diagnostics, in the order each schema defines them.
const (
	FieldDate      = "date"
	FieldAmount    = "amount"
	FieldClient    = "client"
	FieldTeacher   = "to"
	FieldCategory  = "category"
	FieldRecipient = "to"
)

// Label is one row of a schema table: the bilingual alternatives recognized
// for a logical field, and whether the captured value keeps its original
// case. Date and amount tokens are normalized afterwards, so their case is
// irrelevant; names and categories are carried through verbatim.
type Label struct {
	Field        string
	Alternatives []string
	Preserve     bool
}

// Schema is a compiled label table for one record shape. A label matches a
// line of the form "label: value" or "label - value" anywhere in the text,
// case-insensitively.
type Schema struct {
	name   string
	labels []compiledLabel
}

type compiledLabel struct {
	re       *regexp.Regexp
	field    string
	preserve bool
}

// NewSchema compiles a label table into a Schema.
func NewSchema(name string, labels []Label) (*Schema, error) {
	compiled := make([]compiledLabel, 0, len(labels))
	for _, l := range labels {
		re, err := regexp.Compile(labelPattern(l.Alternatives))
		if err != nil {
			return nil, fmt.Errorf("failed to compile label %s: %w", l.Field, err)
		}
		compiled = append(compiled, compiledLabel{
			re:       re,
			field:    l.Field,
			preserve: l.Preserve,
		})
	}
	return &Schema{name: name, labels: compiled}, nil
}

// labelPattern builds the regex for a set of label alternatives: the label
// token, a ":" or "-" separator, then the remainder of the line.
func labelPattern(alternatives []string) string {
	return `(?im)(?:` + strings.Join(alternatives, "|") + `)\s*[:\-]\s*(.+)`
}

// Name returns the schema name, used only for logging.
func (s *Schema) Name() string {
	return s.name
}

func mustSchema(name string, labels []Label) *Schema {
	s, err := NewSchema(name, labels)
	if err != nil {
		panic(err)
	}
	return s
}

// IncomingSchema recognizes pay-in records: date, amount, client, teacher.
var IncomingSchema = mustSchema("incoming", []Label{
	{Field: FieldDate, Alternatives: []string{"дата", "date"}},
	{Field: FieldAmount, Alternatives: []string{"сумма", "amount", "sum"}},
	{Field: FieldClient, Alternatives: []string{"клиент", "client"}, Preserve: true},
	{Field: FieldTeacher, Alternatives: []string{"преподаватель", "teacher", "to"}, Preserve: true},
})

// OutgoingSchema recognizes pay-out records: date, amount, category,
// recipient. The "to" token is shared with the incoming teacher label;
// which meaning applies is decided by the chat the message arrived on,
// never by content.
var OutgoingSchema = mustSchema("outgoing", []Label{
	{Field: FieldDate, Alternatives: []string{"дата", "date"}},
	{Field: FieldAmount, Alternatives: []string{"сумма", "amount", "sum"}},
	{Field: FieldCategory, Alternatives: []string{"категория", "category"}, Preserve: true},
	{Field: FieldRecipient, Alternatives: []string{"кому", "to"}, Preserve: true},
})
