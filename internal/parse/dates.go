package parse

import (
	"strings"
	"time"
)

// dateLayouts are the accepted date formats, tried in this order. A token
// must parse exactly against one of them; there is no partial matching.
//
// Two-digit years follow Go's pivot rule: 00-68 become 20xx, 69-99 become
// 19xx.
var dateLayouts = []string{
	"02.01.2006", // 01.02.2026
	"02.01.06",   // 01.02.26
	"2006-01-02", // 2026-02-01
	"02/01/2006", // 01/02/2026
	"02-01-2006", // 01-02-2026
}

// ParseDate parses a date token against the accepted formats. It returns
// the zero time and false when no format matches.
func ParseDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
