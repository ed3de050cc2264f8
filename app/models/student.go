package models

import "time"

// Student is the profile wrapping one User with the student role.
type Student struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id" validate:"required,uuid"`
	Name            string     `json:"name" validate:"required"`
	Gender          Gender     `json:"gender" validate:"required,oneof=Male Female Other"`
	DOB             time.Time  `json:"dob"`
	RollNumber      string     `json:"roll_number"`
	AdmissionNumber string     `json:"admission_number"`
	ClassID         *string    `json:"class_id,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	ParentName      string     `json:"parent_name,omitempty"`
	ParentPhone     string     `json:"parent_phone" validate:"required"`
	MonthlyFee      float64    `json:"monthly_fee"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Email           string     `json:"email,omitempty"`
	ClassGrade      string     `json:"class_grade,omitempty"`
	ClassSection    string     `json:"class_section,omitempty"`
}
