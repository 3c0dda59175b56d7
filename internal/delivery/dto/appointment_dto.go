package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// AppointmentRequest carries the denormalized patient and doctor names
// resolved by the caller at selection time. Empty names are accepted.
type AppointmentRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Notes       string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
}
