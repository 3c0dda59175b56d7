package dashboard

import (
	"context"

	"go-hospital-admin/internal/delivery/dto"
)

// The interfaces below are the remote calls each view relies on.
// apiclient endpoints satisfy them.

type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type Creator[T any, D any] interface {
	Create(ctx context.Context, draft D) (T, error)
}

type Updater[T any, D any] interface {
	Update(ctx context.Context, id string, draft D) (T, error)
}

type Deleter interface {
	Delete(ctx context.Context, id string) error
}

type StatusSetter interface {
	SetStatus(ctx context.Context, id, status string) error
}

// RecordAPI serves entities with full update and delete.
type RecordAPI[T any, D any] interface {
	Lister[T]
	Creator[T, D]
	Updater[T, D]
	Deleter
}

// RosterAPI serves entities that can be added and removed but not edited.
type RosterAPI[T any, D any] interface {
	Lister[T]
	Creator[T, D]
	Deleter
}

// StatusAPI serves entities whose only edit is a status change.
type StatusAPI[T any, D any] interface {
	Lister[T]
	Creator[T, D]
	StatusSetter
}

type MedicalRecordAPI interface {
	Lister[dto.MedicalRecordResponse]
	Creator[dto.MedicalRecordResponse, dto.MedicalRecordRequest]
	ListByPatient(ctx context.Context, patientID string) ([]dto.MedicalRecordResponse, error)
}

type StatsAPI interface {
	Get(ctx context.Context) (dto.DashboardStatsResponse, error)
}

var (
	AppointmentStatuses = []string{"scheduled", "completed", "cancelled"}
	PaymentStatuses     = []string{"pending", "paid", "cancelled"}
)
