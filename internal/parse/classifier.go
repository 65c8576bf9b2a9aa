package parse

import "regexp"

// labelMarkers are the six bilingual field labels a payment record can
// carry. The classifier only checks for their presence, not position.
var labelMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:дата|date)\s*[:\-]`),
	regexp.MustCompile(`(?i)(?:сумма|amount|sum)\s*[:\-]`),
	regexp.MustCompile(`(?i)(?:клиент|client)\s*[:\-]`),
	regexp.MustCompile(`(?i)(?:преподаватель|teacher|to)\s*[:\-]`),
	regexp.MustCompile(`(?i)(?:категория|category)\s*[:\-]`),
	regexp.MustCompile(`(?i)(?:кому|recipient|to)\s*[:\-]`),
}

// LooksLikePayment reports whether text is shaped like a payment record:
// at least two of the known field labels appear anywhere in it. It is a
// cheap gate in front of full parsing, deliberately permissive; a false
// positive just fails the parse, a false negative is silently dropped.
func LooksLikePayment(text string) bool {
	matches := 0
	for _, marker := range labelMarkers {
		if marker.MatchString(text) {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}
