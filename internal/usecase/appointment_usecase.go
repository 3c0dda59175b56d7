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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid status")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create books a new appointment. New appointments always start scheduled.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := &entity.Appointment{Status: entity.AppointmentStatusScheduled}
	converter.ApplyAppointmentRequest(appointment, req)

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	resp := converter.AppointmentToResponse(appointment)
	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), resp)

	return resp, nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)
	converter.ApplyAppointmentRequest(appointment, req)

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	resp := converter.AppointmentToResponse(appointment)
	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, "appointment", id.String(), oldValue, resp)

	return resp, nil
}

// UpdateStatus allows any known status to follow any other.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := entity.AppointmentStatus(status)
	if !next.Valid() {
		return ErrInvalidStatus
	}

	appointment, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	previous := appointment.Status
	appointment.Status = next

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}

	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentStatus, "appointment", id.String(), previous, next)

	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", id.String(), converter.AppointmentToResponse(appointment))

	return nil
}

func (u *appointmentUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
