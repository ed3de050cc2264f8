package models

import "time"

// Class is a grade+section grouping of students. The (grade, section) pair
// is unique. ClassTeacherID may point at a deleted teacher; readers treat a
// missing reference as unassigned.
type Class struct {
	ID             string    `json:"id"`
	Grade          string    `json:"grade" validate:"required"`
	Section        string    `json:"section" validate:"required"`
	ClassTeacherID *string   `json:"class_teacher_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	TeacherName    string    `json:"teacher_name,omitempty"`
	StudentCount   int       `json:"student_count"`
}
