package repository

import (
	"context"

	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type billRepository struct {
	*gormRepository[entity.Bill]
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{gormRepository: newGormRepository[entity.Bill](db)}
}

func (r *billRepository) CountByPaymentStatus(ctx context.Context, status entity.PaymentStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).Where("payment_status = ?", status).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type memoryBillRepository struct {
	*memoryRepository[entity.Bill, *entity.Bill]
}

func NewMemoryBillRepository() domainRepo.BillRepository {
	return &memoryBillRepository{memoryRepository: newMemoryRepository[entity.Bill, *entity.Bill]()}
}

func (r *memoryBillRepository) CountByPaymentStatus(ctx context.Context, status entity.PaymentStatus) (int64, error) {
	bills := r.filter(func(b *entity.Bill) bool { return b.HasPaymentStatus(status) })
	return int64(len(bills)), nil
}
