package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeMatches(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		r     DateRange
		t     time.Time
		match bool
	}{
		{"zero value matches all", "", now.AddDate(-1, 0, 0), true},
		{"all matches everything", DateAll, now.AddDate(-1, 0, 0), true},
		{"today same day", DateToday, now.Add(-6 * time.Hour), true},
		{"today yesterday", DateToday, now.AddDate(0, 0, -1), false},
		{"week inside", DateWeek, now.AddDate(0, 0, -6), true},
		{"week boundary", DateWeek, now.AddDate(0, 0, -7), true},
		{"week outside", DateWeek, now.AddDate(0, 0, -8), false},
		{"month inside", DateMonth, now.AddDate(0, 0, -20), true},
		{"month outside", DateMonth, now.AddDate(0, -2, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.match, tc.r.Matches(tc.t, now))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("", "anything"))
	assert.True(t, containsFold("GAR", "Maria Garcia"))
	assert.True(t, containsFold("acme", "Coffee", "Acme Supplies"))
	assert.False(t, containsFold("nope", "Coffee", "Acme Supplies"))
	assert.False(t, containsFold("x", ""))
}
