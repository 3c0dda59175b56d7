package converter

import (
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
	"go-hospital-admin/internal/domain/repository"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		Actor:     log.Actor,
		Action:    log.Action,
		Entity:    log.Entity(),
		EntityID:  log.EntityID(),
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToList wraps a trail page; an empty trail encodes as [] rather than null.
func AuditLogsToList(logs []entity.AuditLog) *dto.AuditLogListResponse {
	list := &dto.AuditLogListResponse{
		Logs:  make([]dto.AuditLogResponse, len(logs)),
		Total: len(logs),
	}
	for i := range logs {
		list.Logs[i] = *AuditLogToResponse(&logs[i])
	}
	return list
}

func AuditLogQueryToFilter(q dto.AuditLogQuery) repository.AuditLogFilter {
	return repository.AuditLogFilter{
		Entity:   q.Entity,
		EntityID: q.EntityID,
		Actor:    q.Actor,
	}
}
