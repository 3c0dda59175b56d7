package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicalRecordRequest struct {
	PatientID     string `json:"patient_id" validate:"required"`
	PatientName   string `json:"patient_name"`
	DoctorID      string `json:"doctor_id" validate:"required"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"date" validate:"required"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Prescriptions string `json:"prescriptions" validate:"required"`
	Tests         string `json:"tests"`
	Notes         string `json:"notes"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     string    `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	DoctorID      string    `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	Date          string    `json:"date"`
	Diagnosis     string    `json:"diagnosis"`
	Prescriptions string    `json:"prescriptions"`
	Tests         string    `json:"tests"`
	Notes         string    `json:"notes"`
	CreatedDate   time.Time `json:"created_date"`
}
