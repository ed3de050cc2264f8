package models

import (
	"math"
	"time"
)

// Attendance records one student's status for one subject on one calendar
// day. At most one record exists per (student, subject, date).
type Attendance struct {
	ID          string           `json:"id"`
	StudentID   string           `json:"student_id" validate:"required,uuid"`
	ClassID     string           `json:"class_id" validate:"required,uuid"`
	SubjectID   string           `json:"subject_id" validate:"required,uuid"`
	TeacherID   string           `json:"teacher_id" validate:"required,uuid"`
	Date        time.Time        `json:"date"`
	Status      AttendanceStatus `json:"status" validate:"required,oneof=Present Absent Late Excused"`
	Remarks     string           `json:"remarks,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	StudentName string           `json:"student_name,omitempty"`
	SubjectName string           `json:"subject_name,omitempty"`
	SubjectCode string           `json:"subject_code,omitempty"`
	TeacherName string           `json:"teacher_name,omitempty"`
}

// AttendanceSummary aggregates a set of attendance records. Percentage
// counts late arrivals as attended.
type AttendanceSummary struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Excused    int     `json:"excused"`
	Percentage float64 `json:"percentage"`
}

// SummarizeAttendance derives per-status counts and the attendance
// percentage, rounded to 2 decimals, 0 when there are no records.
func SummarizeAttendance(records []*Attendance) AttendanceSummary {
	s := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case Present:
			s.Present++
		case Absent:
			s.Absent++
		case Late:
			s.Late++
		case Excused:
			s.Excused++
		}
	}
	if s.Total > 0 {
		pct := float64(s.Present+s.Late) / float64(s.Total) * 100
		s.Percentage = math.Round(pct*100) / 100
	}
	return s
}
