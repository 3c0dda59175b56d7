package dto

import (
	"time"

	"go-hospital-admin/internal/domain/entity"
)

// AuditLogQuery is read from the query string of GET /audit-logs.
type AuditLogQuery struct {
	Entity   string `json:"entity" validate:"omitempty,oneof=patient doctor staff appointment medical_record bill medicine"`
	EntityID string `json:"entity_id" validate:"omitempty,max=64"`
	Actor    string `json:"actor" validate:"omitempty,max=255"`
}

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Actor     string      `json:"actor"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entity_id"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
