package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"typical", 170, 70, 24.2},
		{"tall and heavy", 190, 100, 27.7},
		{"one decimal rounding", 180, 81.5, 25.2},
		{"zero height", 0, 70, 0},
		{"zero weight", 170, 0, 0},
		{"negative height", -170, 70, 0},
		{"negative weight", 170, -70, 0},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBMI(tt.heightCm, tt.weightKg))
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		name         string
		bmi          float64
		wantCategory string
		wantColor    string
	}{
		{"underweight", 17.0, "Underweight", "#FF9800"},
		{"normal", 22.0, "Normal", "#4CAF50"},
		{"overweight", 27.0, "Overweight", "#FF5722"},
		{"obese", 35.0, "Obese", "#D32F2F"},
		// Boundary values land on the higher category ("<" comparisons).
		{"exactly 18.5 is normal", 18.5, "Normal", "#4CAF50"},
		{"exactly 24.9 is overweight", 24.9, "Overweight", "#FF5722"},
		{"exactly 29.9 is obese", 29.9, "Obese", "#D32F2F"},
		{"just below 24.9 is normal", 24.8, "Normal", "#4CAF50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := BMICategory(tt.bmi)
			assert.Equal(t, tt.wantCategory, info.Category)
			assert.Equal(t, tt.wantColor, info.Color)
		})
	}
}

func TestCalculateWaterGoal(t *testing.T) {
	assert.Equal(t, 2450, CalculateWaterGoal(70))
	assert.Equal(t, 0, CalculateWaterGoal(0))
	assert.Equal(t, 2853, CalculateWaterGoal(81.5))
}

func TestCalculateOneRepMax(t *testing.T) {
	got, ok := CalculateOneRepMax(60, 8)
	assert.True(t, ok)
	assert.Equal(t, 76, got)

	got, ok = CalculateOneRepMax(100, 1)
	assert.True(t, ok)
	assert.Equal(t, 103, got)

	// Invalid inputs decline rather than producing a value.
	_, ok = CalculateOneRepMax(0, 8)
	assert.False(t, ok)
	_, ok = CalculateOneRepMax(60, 0)
	assert.False(t, ok)
	_, ok = CalculateOneRepMax(-60, -8)
	assert.False(t, ok)
}

func TestDashboardScenarioThresholds(t *testing.T) {
	// 170cm / 70kg gives 24.2 which must read as Normal under the
	// 24.9 cut point, even though it would also be Normal under 25.
	bmi := CalculateBMI(170, 70)
	assert.Equal(t, 24.2, bmi)
	assert.Equal(t, "Normal", BMICategory(bmi).Category)
}
