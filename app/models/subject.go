package models

import "time"

// Subject is a taught course tied to one class and one teacher.
type Subject struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required,uuid"`
	TeacherID   string    `json:"teacher_id" validate:"required,uuid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TeacherName string    `json:"teacher_name,omitempty"`
}
