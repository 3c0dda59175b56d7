package repository

import (
	"context"

	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	*gormRepository[entity.MedicalRecord]
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{gormRepository: newGormRepository[entity.MedicalRecord](db)}
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order(insertionOrder).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type memoryMedicalRecordRepository struct {
	*memoryRepository[entity.MedicalRecord, *entity.MedicalRecord]
}

func NewMemoryMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &memoryMedicalRecordRepository{
		memoryRepository: newMemoryRepository[entity.MedicalRecord, *entity.MedicalRecord](),
	}
}

func (r *memoryMedicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.MedicalRecord, error) {
	return r.filter(func(m *entity.MedicalRecord) bool { return m.PatientID == patientID }), nil
}
