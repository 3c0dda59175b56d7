package usecase

import (
	"context"

	"go-hospital-admin/internal/converter"
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
	"go-hospital-admin/internal/domain/repository"
	"go-hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

// MedicalRecordUsecase is create and read only.
type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.MedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetAll(ctx context.Context) ([]dto.MedicalRecordResponse, error)
	GetByPatient(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:          log,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.MedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record := converter.MedicalRecordFromRequest(req)

	if err := u.recordRepo.Create(ctx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	resp := converter.MedicalRecordToResponse(record)
	u.auditService.LogCreate(ctx, entity.AuditActionMedicalRecordCreate, "medical_record", record.ID.String(), resp)

	return resp, nil
}

func (u *medicalRecordUsecase) GetAll(ctx context.Context) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all medical records: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}

// GetByPatient returns an empty list for unknown patients rather than an error.
func (u *medicalRecordUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical records by patient: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordsToResponses(records), nil
}
