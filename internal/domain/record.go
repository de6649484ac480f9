package domain

import (
	"errors"
	"math"
	"time"
)

// DateLayout is the calendar-date key format for daily records (ISO form).
const DateLayout = "2006-01-02"

// Metric identifies one trackable field of a DailyRecord.
type Metric string

const (
	MetricSteps    Metric = "steps"
	MetricWater    Metric = "water"
	MetricSleep    Metric = "sleep"
	MetricCalories Metric = "calories"
	MetricProtein  Metric = "protein"
)

var ErrUnknownMetric = errors.New("unknown metric field")

// DailyRecord is one calendar day's logged health metrics for one user.
// Exactly one record exists per (user, date); Date acts as the key.
//
// Protein is a pointer because "never logged" and "logged zero grams" are
// different things for display. A nil Protein is omitted from writes so
// merge-style persistence keeps it absent.
type DailyRecord struct {
	Date     string   `bson:"date" json:"date"` // YYYY-MM-DD
	Steps    int      `bson:"steps" json:"steps"`
	WaterMl  int      `bson:"water" json:"water"`
	SleepHrs float64  `bson:"sleep" json:"sleep"`
	Calories int      `bson:"calories" json:"calories"`
	Protein  *float64 `bson:"protein,omitempty" json:"protein,omitempty"` // grams
}

// DefaultRecord returns an all-zero record for the given date. Used when
// no stored record exists yet ("today" is created lazily on first read).
func DefaultRecord(date string) DailyRecord {
	return DailyRecord{Date: date}
}

// Today returns the ISO date key for the current day.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ApplyDelta returns a copy of the record with the given field adjusted by
// delta and floored at zero. This is the only mutation path for daily
// metrics: callers always express changes as deltas, and a decrement below
// zero clamps to zero rather than going negative.
func ApplyDelta(rec DailyRecord, field Metric, delta float64) (DailyRecord, error) {
	switch field {
	case MetricSteps:
		rec.Steps = clampInt(float64(rec.Steps) + delta)
	case MetricWater:
		rec.WaterMl = clampInt(float64(rec.WaterMl) + delta)
	case MetricSleep:
		rec.SleepHrs = math.Max(0, rec.SleepHrs+delta)
	case MetricCalories:
		rec.Calories = clampInt(float64(rec.Calories) + delta)
	case MetricProtein:
		// First delta materializes the field; absent counts as zero.
		base := 0.0
		if rec.Protein != nil {
			base = *rec.Protein
		}
		v := math.Max(0, base+delta)
		rec.Protein = &v
	default:
		return rec, ErrUnknownMetric
	}
	return rec, nil
}

func clampInt(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
