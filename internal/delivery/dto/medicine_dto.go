package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type MedicineRequest struct {
	Name         string          `json:"name" validate:"required"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	ExpiryDate   string          `json:"expiry_date" validate:"required"`
	Manufacturer string          `json:"manufacturer" validate:"required"`
	Category     string          `json:"category" validate:"required"`
}

// Response DTOs

type MedicineResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	ExpiryDate   string          `json:"expiry_date"`
	Manufacturer string          `json:"manufacturer"`
	Category     string          `json:"category"`
	CreatedDate  time.Time       `json:"created_date"`
}
