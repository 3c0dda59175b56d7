package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// BillRequest leaves payment_status optional; the store defaults it to pending.
type BillRequest struct {
	PatientID     string          `json:"patient_id" validate:"required"`
	PatientName   string          `json:"patient_name"`
	AppointmentID string          `json:"appointment_id"`
	Items         string          `json:"items" validate:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"gte=0"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,oneof=pending paid cancelled"`
}

// Response DTOs

type BillResponse struct {
	ID            uuid.UUID       `json:"id"`
	PatientID     string          `json:"patient_id"`
	PatientName   string          `json:"patient_name"`
	AppointmentID string          `json:"appointment_id"`
	Items         string          `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	Date          time.Time       `json:"date"`
	CreatedDate   time.Time       `json:"created_date"`
}
