package services

import (
	"strings"
	"time"
)

// DateRange narrows a collection by creation date relative to now. The zero
// value (or "all") matches everything.
type DateRange string

const (
	DateAll   DateRange = "all"
	DateToday DateRange = "today"
	DateWeek  DateRange = "week"
	DateMonth DateRange = "month"
)

func (r DateRange) Matches(t, now time.Time) bool {
	switch r {
	case DateToday:
		return sameDay(t, now)
	case DateWeek:
		return !t.Before(now.AddDate(0, 0, -7))
	case DateMonth:
		return !t.Before(now.AddDate(0, -1, 0))
	}
	return true
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// containsFold reports whether any field contains term, case-insensitively.
// An empty term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
