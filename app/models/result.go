package models

import "time"

// Result stores a student's marks for one subject within one exam. The grade
// column is derived from the marks and recomputed on every write; one row
// exists per (exam, student, subject).
type Result struct {
	ID            string    `json:"id"`
	ExamID        string    `json:"exam_id" validate:"required,uuid"`
	StudentID     string    `json:"student_id" validate:"required,uuid"`
	SubjectID     string    `json:"subject_id" validate:"required,uuid"`
	MarksObtained float64   `json:"marks_obtained" validate:"gte=0"`
	TotalMarks    float64   `json:"total_marks" validate:"gt=0"`
	Grade         string    `json:"grade"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ExamName      string    `json:"exam_name,omitempty"`
	SubjectName   string    `json:"subject_name,omitempty"`
	SubjectCode   string    `json:"subject_code,omitempty"`
	StudentName   string    `json:"student_name,omitempty"`
	RollNumber    string    `json:"roll_number,omitempty"`
}
