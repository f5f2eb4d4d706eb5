package analytics_test

import (
	"testing"
	"time"

	"barangay-portal/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestBuildTrend(t *testing.T) {
	end := time.Date(2026, 3, 14, 18, 45, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	t.Run("no rows gives seven zero points", func(t *testing.T) {
		points := analytics.BuildTrend(analytics.TrendWindow, end, nil)

		assert.Equal(t, []analytics.TrendPoint{
			{Date: "2026-03-08"},
			{Date: "2026-03-09"},
			{Date: "2026-03-10"},
			{Date: "2026-03-11"},
			{Date: "2026-03-12"},
			{Date: "2026-03-13"},
			{Date: "2026-03-14"},
		}, points)
	})

	t.Run("fills matching days and ignores rows outside the window", func(t *testing.T) {
		rows := []analytics.DailyValue{
			{Day: day(14), Value: 3},
			{Day: day(7), Value: 99},
			{Day: day(10), Value: 2},
			{Day: day(10), Value: 1},
		}

		points := analytics.BuildTrend(analytics.TrendWindow, end, rows)

		assert.Len(t, points, 7)
		assert.Equal(t, 3.0, points[2].Value)
		assert.Equal(t, 3.0, points[6].Value)
		var sum float64
		for _, p := range points {
			sum += p.Value
		}
		assert.Equal(t, 6.0, sum)
	})

	t.Run("strictly ascending across a month boundary", func(t *testing.T) {
		points := analytics.BuildTrend(analytics.TrendWindow, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), nil)

		assert.Equal(t, "2026-02-24", points[0].Date)
		assert.Equal(t, "2026-03-02", points[6].Date)
		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i-1].Date, points[i].Date)
		}
	})

	t.Run("window start", func(t *testing.T) {
		assert.Equal(t, day(8), analytics.TrendStart(analytics.TrendWindow, end))
	})
}
