package models

import "time"

// Parent is the profile wrapping one User with the parent role. Children
// holds linked student profiles when loaded.
type Parent struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id" validate:"required,uuid"`
	Name      string     `json:"name" validate:"required"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Email     string     `json:"email,omitempty"`
	Children  []*Student `json:"children,omitempty"`
}
