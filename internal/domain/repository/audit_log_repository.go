package repository

import (
	"context"

	"go-hospital-admin/internal/domain/entity"
)

// AuditLogFilter narrows the trail. Empty fields match every entry.
type AuditLogFilter struct {
	Entity   string
	EntityID string
	Actor    string
}

// Matches applies the filter to a single entry.
func (f AuditLogFilter) Matches(log entity.AuditLog) bool {
	if f.Entity != "" && log.Entity() != f.Entity {
		return false
	}
	if f.EntityID != "" && log.EntityID() != f.EntityID {
		return false
	}
	return f.Actor == "" || log.Actor == f.Actor
}

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, filter AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
