package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// PatientRequest is used for both create and full-record update.
type PatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	Contact        string `json:"contact" validate:"required"`
	Address        string `json:"address" validate:"required"`
	BloodGroup     string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MedicalHistory string `json:"medical_history"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Contact        string    `json:"contact"`
	Address        string    `json:"address"`
	BloodGroup     string    `json:"blood_group"`
	MedicalHistory string    `json:"medical_history"`
	CreatedDate    time.Time `json:"created_date"`
}
