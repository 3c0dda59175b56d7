package usecase

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/domain/entity"
	"go-hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	staffRepo       repository.StaffRepository
	billRepo        repository.BillRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	staffRepo repository.StaffRepository,
	billRepo repository.BillRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		billRepo:        billRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	var stats dto.DashboardStatsResponse
	var err error

	if stats.TotalPatients, err = u.patientRepo.Count(ctx); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.TotalDoctors, err = u.doctorRepo.Count(ctx); err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if stats.TotalAppointments, err = u.appointmentRepo.Count(ctx); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	if stats.TotalStaff, err = u.staffRepo.Count(ctx); err != nil {
		u.log.Warnf("Failed to count staff: %+v", err)
		return nil, err
	}
	if stats.PendingBills, err = u.billRepo.CountByPaymentStatus(ctx, entity.PaymentStatusPending); err != nil {
		u.log.Warnf("Failed to count pending bills: %+v", err)
		return nil, err
	}

	return &stats, nil
}
