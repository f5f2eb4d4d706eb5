package analytics

import "time"

// TrendWindow is the number of days every dashboard trend covers.
const TrendWindow = 7

const dayLayout = "2006-01-02"

// BuildTrend produces one point per calendar day for the window ending on end's date,
// oldest first. Days with no matching row are zero. Rows outside the window are ignored.
func BuildTrend(window int, end time.Time, rows []DailyValue) []TrendPoint {
	if window <= 0 {
		return []TrendPoint{}
	}

	byDay := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDay[r.Day.Format(dayLayout)] += r.Value
	}

	last := startOfDay(end)
	points := make([]TrendPoint, window)
	for i := 0; i < window; i++ {
		day := last.AddDate(0, 0, i-window+1).Format(dayLayout)
		points[i] = TrendPoint{Date: day, Value: byDay[day]}
	}
	return points
}

// TrendStart is the first instant covered by a window ending on end's date.
func TrendStart(window int, end time.Time) time.Time {
	return startOfDay(end).AddDate(0, 0, 1-window)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
