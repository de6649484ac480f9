package domain

// TrendWindowDays is the fixed charting window.
const TrendWindowDays = 7

// RecentWindow takes a history ordered newest-first, keeps the n most
// recent records, and reverses them to oldest-first for chronological
// chart rendering. If fewer than n records exist it returns all of them -
// there is no padding with synthetic zero-days, and a missing day is
// simply absent from the output.
func RecentWindow(history []DailyRecord, n int) []DailyRecord {
	if n > len(history) {
		n = len(history)
	}
	if n <= 0 {
		return []DailyRecord{}
	}
	window := make([]DailyRecord, n)
	for i := 0; i < n; i++ {
		window[i] = history[n-1-i]
	}
	return window
}

// TrendPoint is one (date, value) sample of a chart series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series extracts a parallel (date, value) series for one metric from an
// oldest-first window. No smoothing, interpolation, or gap-filling.
// Records with no protein logged are skipped for the protein series,
// matching the absent-vs-zero contract of DailyRecord.
func Series(window []DailyRecord, field Metric) []TrendPoint {
	points := make([]TrendPoint, 0, len(window))
	for _, rec := range window {
		var v float64
		switch field {
		case MetricSteps:
			v = float64(rec.Steps)
		case MetricWater:
			v = float64(rec.WaterMl)
		case MetricSleep:
			v = rec.SleepHrs
		case MetricCalories:
			v = float64(rec.Calories)
		case MetricProtein:
			if rec.Protein == nil {
				continue
			}
			v = *rec.Protein
		default:
			continue
		}
		points = append(points, TrendPoint{Date: rec.Date, Value: v})
	}
	return points
}
