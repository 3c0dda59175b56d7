package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindAll(ctx context.Context, filter domainRepo.AuditLogFilter) ([]entity.AuditLog, error) {
	query := r.db.WithContext(ctx)
	if filter.Entity != "" {
		query = query.Where("metadata->>'entity' = ?", filter.Entity)
	}
	if filter.EntityID != "" {
		query = query.Where("metadata->>'entity_id' = ?", filter.EntityID)
	}
	if filter.Actor != "" {
		query = query.Where("actor = ?", filter.Actor)
	}

	var logs []entity.AuditLog
	if err := query.Order("id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

type memoryAuditLogRepository struct {
	mu   sync.RWMutex
	logs []entity.AuditLog
}

func NewMemoryAuditLogRepository() domainRepo.AuditLogRepository {
	return &memoryAuditLogRepository{}
}

func (r *memoryAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = int64(len(r.logs) + 1)
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memoryAuditLogRepository) FindAll(ctx context.Context, filter domainRepo.AuditLogFilter) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]entity.AuditLog, 0, len(r.logs))
	for _, log := range r.logs {
		if filter.Matches(log) {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

func (r *memoryAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > int64(len(r.logs)) {
		return nil, nil
	}
	log := r.logs[id-1]
	return &log, nil
}
