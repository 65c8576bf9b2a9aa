// Package report computes summary figures and reporting periods over the
// stored payment records.
package report

import "time"

// Period is a named inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
	Name  string
}

// LastSevenDays returns the trailing seven-day window ending today.
func LastSevenDays(now time.Time) Period {
	end := dateOf(now)
	return Period{
		Name:  "Last 7 Days",
		Start: end.AddDate(0, 0, -7),
		End:   end,
	}
}

// CurrentMonth returns the period from the first of the current month
// through today.
func CurrentMonth(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Period{
		Name:  "Current Month (" + start.Format("January 2006") + ")",
		Start: start,
		End:   dateOf(now),
	}
}

// PreviousMonth returns the whole previous calendar month.
func PreviousMonth(now time.Time) Period {
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfThis.AddDate(0, -1, 0)
	return Period{
		Name:  "Previous Month (" + start.Format("January 2006") + ")",
		Start: start,
		End:   firstOfThis.AddDate(0, 0, -1),
	}
}

// dateOf truncates a timestamp to its calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
