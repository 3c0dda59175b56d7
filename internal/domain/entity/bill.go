package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a bill
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is one of the known payment statuses
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

type Bill struct {
	Base
	PatientID     string          `gorm:"type:varchar(64);not null;index"`
	PatientName   string          `gorm:"type:varchar(255);not null"`
	AppointmentID string          `gorm:"type:varchar(64)"`
	Items         string          `gorm:"type:text;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(16);not null;index"`
	Date          time.Time       `gorm:"not null"`
}

func (Bill) TableName() string {
	return "bills"
}

// HasPaymentStatus reports whether the bill is currently in status.
func (b *Bill) HasPaymentStatus(status PaymentStatus) bool {
	return b.PaymentStatus == status
}
