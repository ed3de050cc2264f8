package models

import "time"

// Teacher is the profile wrapping one User with the teacher role.
type Teacher struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id" validate:"required,uuid"`
	Name          string    `json:"name" validate:"required"`
	Phone         string    `json:"phone,omitempty"`
	Qualification string    `json:"qualification,omitempty"`
	Specialty     string    `json:"specialty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Email         string    `json:"email,omitempty"`
}
