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
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context) ([]dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{}
	converter.ApplyDoctorRequest(doctor, req)

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	resp := converter.DoctorToResponse(doctor)
	u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), resp)

	return resp, nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.DoctorToResponse(doctor)
	converter.ApplyDoctorRequest(doctor, req)

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	resp := converter.DoctorToResponse(doctor)
	u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, "doctor", id.String(), oldValue, resp)

	return resp, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, "doctor", id.String(), converter.DoctorToResponse(doctor))

	return nil
}

func (u *doctorUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
