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
	ErrStaffNotFound = errors.New("staff not found")
)

// StaffUsecase has no update; staff records are replaced by delete and create.
type StaffUsecase interface {
	Create(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error)
	GetAll(ctx context.Context) ([]dto.StaffResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffUsecase struct {
	log          *logrus.Logger
	staffRepo    repository.StaffRepository
	auditService service.AuditService
}

func NewStaffUsecase(
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	auditService service.AuditService,
) StaffUsecase {
	return &staffUsecase{
		log:          log,
		staffRepo:    staffRepo,
		auditService: auditService,
	}
}

func (u *staffUsecase) Create(ctx context.Context, req *dto.StaffRequest) (*dto.StaffResponse, error) {
	staff := converter.StaffFromRequest(req)

	if err := u.staffRepo.Create(ctx, staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	resp := converter.StaffToResponse(staff)
	u.auditService.LogCreate(ctx, entity.AuditActionStaffCreate, "staff", staff.ID.String(), resp)

	return resp, nil
}

func (u *staffUsecase) GetAll(ctx context.Context) ([]dto.StaffResponse, error) {
	members, err := u.staffRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all staff: %+v", err)
		return nil, err
	}

	return converter.StaffToResponses(members), nil
}

func (u *staffUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	staff, err := u.staffRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	if err := u.staffRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete staff: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionStaffDelete, "staff", id.String(), converter.StaffToResponse(staff))

	return nil
}
