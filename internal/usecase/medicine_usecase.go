package usecase

import (
	"context"
	"errors"

	"go-hospital-admin/internal/converter"
	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
	"go-hospital-admin/internal/domain/repository"
	"go-hospital-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	GetAll(ctx context.Context) ([]dto.MedicineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{}
	converter.ApplyMedicineRequest(medicine, req)

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	resp := converter.MedicineToResponse(medicine)
	u.auditService.LogCreate(ctx, entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), resp)

	return resp, nil
}

func (u *medicineUsecase) GetAll(ctx context.Context) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all medicines: %+v", err)
		return nil, err
	}

	return converter.MedicinesToResponses(medicines), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.MedicineToResponse(medicine)
	converter.ApplyMedicineRequest(medicine, req)

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	resp := converter.MedicineToResponse(medicine)
	u.auditService.LogUpdate(ctx, entity.AuditActionMedicineUpdate, "medicine", id.String(), oldValue, resp)

	return resp, nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	medicine, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionMedicineDelete, "medicine", id.String(), converter.MedicineToResponse(medicine))

	return nil
}

func (u *medicineUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return medicine, nil
}
