package analytics_test

import (
	"testing"
	"time"

	"barangay-portal/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroup(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	born := func(years int) time.Time { return now.AddDate(-years, 0, 0) }

	tests := []struct {
		name  string
		birth time.Time
		want  string
	}{
		{"newborn", now, analytics.AgeChild},
		{"twelve", born(12), analytics.AgeChild},
		{"thirteen", born(13), analytics.AgeYouth},
		{"day before 25th birthday", born(25).AddDate(0, 0, 1), analytics.AgeYouth},
		{"twenty five", born(25), analytics.AgeAdult},
		{"fifty nine", born(59), analytics.AgeAdult},
		{"sixty", born(60), analytics.AgeSenior},
		{"ninety", born(90), analytics.AgeSenior},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.AgeGroup(tt.birth, now))
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, analytics.AgeAt(time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 24, analytics.AgeAt(time.Date(2001, 3, 2, 0, 0, 0, 0, time.UTC), now))
}
