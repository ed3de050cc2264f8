package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGrade(t *testing.T) {
	tests := []struct {
		name          string
		marksObtained float64
		totalMarks    float64
		want          string
	}{
		{"full marks", 100, 100, "A+"},
		{"exactly 90 percent", 90, 100, "A+"},
		{"just under 90 percent", 89.9, 100, "A"},
		{"exactly 80 percent", 80, 100, "A"},
		{"exactly 70 percent", 70, 100, "B"},
		{"exactly 60 percent", 60, 100, "C"},
		{"exactly 50 percent", 50, 100, "D"},
		{"just under 50 percent", 49.9, 100, "F"},
		{"zero marks", 0, 100, "F"},
		{"non-100 total", 45, 50, "A+"},
		{"fractional total", 35, 40, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGrade(tt.marksObtained, tt.totalMarks))
		})
	}
}

func TestComputeGradeInvalidTotal(t *testing.T) {
	assert.Equal(t, "F", ComputeGrade(50, 0))
	assert.Equal(t, "F", ComputeGrade(50, -10))
}

func TestComputeGradeAlwaysReturnsABand(t *testing.T) {
	known := map[string]bool{"A+": true, "A": true, "B": true, "C": true, "D": true, "F": true}
	for marks := 0.0; marks <= 100; marks += 0.5 {
		grade := ComputeGrade(marks, 100)
		assert.True(t, known[grade], "unexpected grade %q for %v marks", grade, marks)
	}
}

func TestComputeGradeMonotonic(t *testing.T) {
	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4, "A+": 5}
	prev := "F"
	for marks := 0.0; marks <= 100; marks++ {
		grade := ComputeGrade(marks, 100)
		assert.GreaterOrEqual(t, rank[grade], rank[prev], "grade dropped at %v marks", marks)
		prev = grade
	}
}
