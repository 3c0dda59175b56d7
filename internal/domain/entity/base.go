package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the fields the store assigns to every record: an opaque id,
// the insertion timestamp and the database sequence lists are ordered by.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	// Seq is filled by the BIGSERIAL default and never written by gorm.
	Seq int64 `gorm:"column:seq;->"`
}

// GetID returns the store-assigned identifier
func (b *Base) GetID() uuid.UUID {
	return b.ID
}

// Stamp assigns an id and creation time if they are still unset.
func (b *Base) Stamp(now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
}

// BeforeCreate is the gorm hook that stamps new rows.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.Stamp(time.Now().UTC())
	return nil
}

// Record is implemented by pointers to every stored entity.
type Record interface {
	GetID() uuid.UUID
	Stamp(now time.Time)
}
