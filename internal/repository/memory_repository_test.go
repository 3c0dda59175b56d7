package repository

import (
	"context"
	"testing"

	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsDistinctIDs(t *testing.T) {
	repo := NewMemoryRepositories().Patients
	ctx := context.Background()

	a := &entity.Patient{Name: "A"}
	b := &entity.Patient{Name: "B"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemoryRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryRepositories().Doctors
	ctx := context.Background()

	for _, name := range []string{"Zed", "Amy", "Mo"} {
		require.NoError(t, repo.Create(ctx, &entity.Doctor{Name: name}))
	}

	doctors, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "Zed", doctors[0].Name)
	assert.Equal(t, "Amy", doctors[1].Name)
	assert.Equal(t, "Mo", doctors[2].Name)
}

func TestMemoryRepository_FindByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryRepositories().Medicines
	ctx := context.Background()

	m := &entity.Medicine{Name: "Aspirin", Quantity: 5}
	require.NoError(t, repo.Create(ctx, m))

	found, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	found.Quantity = 99

	again, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, again.Quantity)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepository_CreateRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryRepositories().Staff
	ctx := context.Background()

	s := &entity.Staff{Name: "Kim"}
	require.NoError(t, repo.Create(ctx, s))

	dup := &entity.Staff{Name: "Kim again"}
	dup.ID = s.ID
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicateID)
}

func TestMemoryRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMemoryRepositories().Patients
	ctx := context.Background()

	first := &entity.Patient{Name: "First"}
	second := &entity.Patient{Name: "Second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	first.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, first))

	patients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", patients[0].Name)

	require.NoError(t, repo.Delete(ctx, first.ID))
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	patients, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", patients[0].Name)
}

func TestMemoryBillRepository_CountByPaymentStatus(t *testing.T) {
	repo := NewMemoryBillRepository()
	ctx := context.Background()

	for _, status := range []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusPaid, entity.PaymentStatusPending} {
		require.NoError(t, repo.Create(ctx, &entity.Bill{PaymentStatus: status}))
	}

	pending, err := repo.CountByPaymentStatus(ctx, entity.PaymentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)
}

func TestMemoryMedicalRecordRepository_FindByPatientID(t *testing.T) {
	repo := NewMemoryMedicalRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.MedicalRecord{PatientID: "p1", Diagnosis: "flu"}))
	require.NoError(t, repo.Create(ctx, &entity.MedicalRecord{PatientID: "p2", Diagnosis: "cold"}))
	require.NoError(t, repo.Create(ctx, &entity.MedicalRecord{PatientID: "p1", Diagnosis: "checkup"}))

	records, err := repo.FindByPatientID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "flu", records[0].Diagnosis)
	assert.Equal(t, "checkup", records[1].Diagnosis)

	none, err := repo.FindByPatientID(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryAuditLogRepository_SequentialIDs(t *testing.T) {
	repo := NewMemoryAuditLogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.AuditLog{Action: entity.AuditActionPatientCreate}))
	require.NoError(t, repo.Create(ctx, &entity.AuditLog{Action: entity.AuditActionPatientDelete}))

	log, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, entity.AuditActionPatientDelete, log.Action)

	missing, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryAuditLogRepository_FindAllFilters(t *testing.T) {
	repo := NewMemoryAuditLogRepository()
	ctx := context.Background()

	entry := func(actor, kind, id string) *entity.AuditLog {
		return &entity.AuditLog{Actor: actor, Action: kind + ".update", Metadata: entity.JSON{"entity": kind, "entity_id": id}}
	}
	require.NoError(t, repo.Create(ctx, entry("admin", "patient", "p1")))
	require.NoError(t, repo.Create(ctx, entry("nurse", "patient", "p2")))
	require.NoError(t, repo.Create(ctx, entry("admin", "doctor", "d1")))
	require.NoError(t, repo.Create(ctx, entry("admin", "patient", "p1")))

	all, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	patients, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{Entity: "patient"})
	require.NoError(t, err)
	assert.Len(t, patients, 3)

	history, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{Entity: "patient", EntityID: "p1"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(1), history[0].ID)
	assert.Equal(t, int64(4), history[1].ID)

	byNurse, err := repo.FindAll(ctx, domainRepo.AuditLogFilter{Actor: "nurse"})
	require.NoError(t, err)
	require.Len(t, byNurse, 1)
	assert.Equal(t, "p2", byNurse[0].EntityID())
}
