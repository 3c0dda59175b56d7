package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type StaffRequest struct {
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Contact    string `json:"contact" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

// Response DTOs

type StaffResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	CreatedDate time.Time `json:"created_date"`
}
