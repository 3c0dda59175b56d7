package entity

import "github.com/shopspring/decimal"

// LowStockThreshold is the quantity below which a medicine is flagged as low stock.
const LowStockThreshold = 20

type Medicine struct {
	Base
	Name         string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExpiryDate   string          `gorm:"type:varchar(32);not null"`
	Manufacturer string          `gorm:"type:varchar(255);not null"`
	Category     string          `gorm:"type:varchar(255);not null"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// IsLowStock is derived on read and never persisted
func (m *Medicine) IsLowStock() bool {
	return m.Quantity < LowStockThreshold
}
