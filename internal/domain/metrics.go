package domain

import "math"

// BMICategoryInfo pairs a category label with its fixed display color.
// The colors are design constants, not derived.
type BMICategoryInfo struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the BMI rounded to one decimal place. Returns 0 if either input
// is <= 0 (guards against divide-by-zero and nonsensical input): the
// value feeds straight into display, so it never fails.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10
}

// BMICategory maps a BMI value to its category and display color.
// Thresholds are 18.5 / 24.9 / 29.9 with strict "<" comparisons, so a BMI
// of exactly 24.9 is Overweight. The 24.9/29.9 cut points are a product
// decision carried from the dashboard; do not "fix" them to 25/30.
func BMICategory(bmi float64) BMICategoryInfo {
	switch {
	case bmi < 18.5:
		return BMICategoryInfo{Category: "Underweight", Color: "#FF9800"}
	case bmi < 24.9:
		return BMICategoryInfo{Category: "Normal", Color: "#4CAF50"}
	case bmi < 29.9:
		return BMICategoryInfo{Category: "Overweight", Color: "#FF5722"}
	default:
		return BMICategoryInfo{Category: "Obese", Color: "#D32F2F"}
	}
}

// CalculateWaterGoal returns the daily water goal in milliliters:
// 35ml per kg of body weight is a standard recommendation.
func CalculateWaterGoal(weightKg float64) int {
	return int(math.Round(weightKg * 35))
}

// CalculateOneRepMax estimates the one-repetition max using the Epley
// formula: 1RM = weight * (1 + reps/30). The second return is false when
// the inputs are not both positive; callers must not display a result
// in that case.
func CalculateOneRepMax(weightKg float64, reps int) (int, bool) {
	if weightKg <= 0 || reps <= 0 {
		return 0, false
	}
	return int(math.Round(weightKg * (1 + float64(reps)/30.0))), true
}
