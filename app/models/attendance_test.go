package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func records(statuses ...AttendanceStatus) []*Attendance {
	out := make([]*Attendance, len(statuses))
	for i, s := range statuses {
		out[i] = &Attendance{Status: s}
	}
	return out
}

func TestSummarizeAttendance(t *testing.T) {
	summary := SummarizeAttendance(records(
		Present, Present, Late, Absent, Excused, Present,
	))

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 3, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Excused)
	// Late counts as attended: (3 + 1) / 6.
	assert.Equal(t, 66.67, summary.Percentage)
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	summary := SummarizeAttendance(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.Percentage)
}

func TestSummarizeAttendanceAllPresent(t *testing.T) {
	summary := SummarizeAttendance(records(Present, Present, Present))
	assert.Equal(t, 100.0, summary.Percentage)
}

func TestSummarizeAttendanceAllAbsent(t *testing.T) {
	summary := SummarizeAttendance(records(Absent, Absent))
	assert.Equal(t, 0.0, summary.Percentage)
}
