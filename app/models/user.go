package models

import "time"

type User struct {
	ID        string    `json:"id" validate:"omitempty,uuid"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=6"`
	Role      Role      `json:"role" validate:"required,oneof=admin teacher parent student"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
