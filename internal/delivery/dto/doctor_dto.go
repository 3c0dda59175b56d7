package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type DoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Contact        string `json:"contact" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Department     string `json:"department" validate:"required"`
	Availability   string `json:"availability" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Contact        string    `json:"contact"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	Availability   string    `json:"availability"`
	CreatedDate    time.Time `json:"created_date"`
}
