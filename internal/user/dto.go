package user

import (
	"time"

	"github.com/google/uuid"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	UniversityID string `json:"university_id"`
	Role         Role   `json:"role"`
	Password     string `json:"password"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	UniversityID string    `json:"university_id"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
