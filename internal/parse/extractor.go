package parse

import "strings"

// Extract runs the schema's label table over text and returns the raw value
// for every field, plus the list of fields whose label was not found, in
// schema order.
//
// Presence is decided against a lower-cased copy of the text, and values
// for normalized fields (date, amount) are taken from that copy. Fields
// flagged Preserve are re-extracted from the original text so that names
// and categories keep their case.
func (s *Schema) Extract(text string) (map[string]string, []string) {
	lowered := strings.ToLower(text)

	fields := make(map[string]string, len(s.labels))
	var missing []string

	for _, l := range s.labels {
		m := l.re.FindStringSubmatch(lowered)
		if m == nil {
			missing = append(missing, l.field)
			continue
		}
		value := m[1]
		if l.preserve {
			if orig := l.re.FindStringSubmatch(text); orig != nil {
				value = orig[1]
			}
		}
		fields[l.field] = strings.TrimSpace(value)
	}

	return fields, missing
}
