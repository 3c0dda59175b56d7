package usecase

import (
	"context"
	"errors"

	"go-hospital-admin/internal/converter"
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

// AuditLogUsecase reads the mutation trail written by the audit service.
type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, query dto.AuditLogQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{log: log, auditLogRepo: auditLogRepo}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, query dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindAll(ctx, converter.AuditLogQueryToFilter(query))
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"entity":    query.Entity,
			"entity_id": query.EntityID,
		}).Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToList(logs), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
