package repository

import (
	"context"

	"go-hospital-admin/internal/domain/entity"

	"github.com/google/uuid"
)

// Repository is the storage contract shared by every entity kind.
// FindAll returns records in insertion order and FindByID returns (nil, nil)
// when nothing matches.
type Repository[T any] interface {
	Create(ctx context.Context, item *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type PatientRepository interface {
	Repository[entity.Patient]
}

type DoctorRepository interface {
	Repository[entity.Doctor]
}

type StaffRepository interface {
	Repository[entity.Staff]
}

type AppointmentRepository interface {
	Repository[entity.Appointment]
}

type MedicalRecordRepository interface {
	Repository[entity.MedicalRecord]
	FindByPatientID(ctx context.Context, patientID string) ([]entity.MedicalRecord, error)
}

type BillRepository interface {
	Repository[entity.Bill]
	CountByPaymentStatus(ctx context.Context, status entity.PaymentStatus) (int64, error)
}

type MedicineRepository interface {
	Repository[entity.Medicine]
}
