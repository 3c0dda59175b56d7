package usecase

import (
	"context"
	"io"
	"testing"

	"go-hospital-admin/internal/delivery/dto"
	"go-hospital-admin/internal/delivery/http/middleware"
	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"
	"go-hospital-admin/internal/repository"
	"go-hospital-admin/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repos *repository.Repositories
	log   *logrus.Logger
	audit service.AuditService
}

func newFixture() *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repos := repository.NewMemoryRepositories()
	return &fixture{repos: repos, log: log, audit: service.NewAuditService(log, repos.AuditLogs)}
}

func patientRequest(name string) *dto.PatientRequest {
	return &dto.PatientRequest{
		Name:       name,
		Age:        34,
		Gender:     entity.GenderFemale,
		Contact:    "555-0100",
		Address:    "1 Main St",
		BloodGroup: "O+",
	}
}

func TestPatientUsecase_Lifecycle(t *testing.T) {
	f := newFixture()
	uc := NewPatientUsecase(f.log, f.repos.Patients, f.audit)
	ctx := middleware.WithActor(context.Background(), "admin")

	created, err := uc.Create(ctx, patientRequest("Jane Doe"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedDate.IsZero())

	req := patientRequest("Jane Smith")
	req.MedicalHistory = "asthma"
	updated, err := uc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedDate, updated.CreatedDate)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "asthma", got.MedicalHistory)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	logs, err := f.repos.AuditLogs.FindAll(ctx, domainRepo.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, entity.AuditActionPatientCreate, logs[0].Action)
	assert.Equal(t, entity.AuditActionPatientUpdate, logs[1].Action)
	assert.Equal(t, entity.AuditActionPatientDelete, logs[2].Action)
	assert.Equal(t, "admin", logs[2].Actor)
}

func TestPatientUsecase_UnknownID(t *testing.T) {
	f := newFixture()
	uc := NewPatientUsecase(f.log, f.repos.Patients, f.audit)

	_, err := uc.Update(context.Background(), uuid.New(), patientRequest("x"))
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), uuid.New()), ErrPatientNotFound)
}

func TestPatientUsecase_GetAllKeepsInsertionOrder(t *testing.T) {
	f := newFixture()
	uc := NewPatientUsecase(f.log, f.repos.Patients, f.audit)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		_, err := uc.Create(ctx, patientRequest(name))
		require.NoError(t, err)
	}

	patients, err := uc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Charlie", patients[0].Name)
	assert.Equal(t, "Alice", patients[1].Name)
	assert.Equal(t, "Bob", patients[2].Name)
}

func TestDoctorUsecase_UpdateAndDelete(t *testing.T) {
	f := newFixture()
	uc := NewDoctorUsecase(f.log, f.repos.Doctors, f.audit)
	ctx := context.Background()

	req := &dto.DoctorRequest{Name: "Dr. Who", Specialization: "Cardiology", Contact: "1", Email: "who@h.test", Department: "Heart", Availability: "Mon-Fri"}
	created, err := uc.Create(ctx, req)
	require.NoError(t, err)

	req.Specialization = "Neurology"
	updated, err := uc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Neurology", updated.Specialization)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), ErrDoctorNotFound)
}

func TestStaffUsecase_CreateListDelete(t *testing.T) {
	f := newFixture()
	uc := NewStaffUsecase(f.log, f.repos.Staff, f.audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.StaffRequest{Name: "Sam", Role: "Nurse", Contact: "2", Email: "sam@h.test", Department: "ER"})
	require.NoError(t, err)

	members, err := uc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Nurse", members[0].Role)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), ErrStaffNotFound)
}

func appointmentRequest() *dto.AppointmentRequest {
	return &dto.AppointmentRequest{
		PatientID:   "p-1",
		PatientName: "Jane",
		DoctorID:    "d-1",
		DoctorName:  "Dr. Who",
		Date:        "2024-05-01",
		Time:        "09:30",
		Reason:      "checkup",
	}
}

func TestAppointmentUsecase_CreateDefaultsToScheduled(t *testing.T) {
	f := newFixture()
	uc := NewAppointmentUsecase(f.log, f.repos.Appointments, f.audit)

	created, err := uc.Create(context.Background(), appointmentRequest())
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), created.Status)
	assert.Equal(t, "Jane", created.PatientName)
}

func TestAppointmentUsecase_UpdateStatusAnyToAny(t *testing.T) {
	f := newFixture()
	uc := NewAppointmentUsecase(f.log, f.repos.Appointments, f.audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, appointmentRequest())
	require.NoError(t, err)

	for _, status := range []string{"cancelled", "scheduled", "completed", "cancelled"} {
		require.NoError(t, uc.UpdateStatus(ctx, created.ID, status))
		appointments, err := uc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, status, appointments[0].Status)
	}

	assert.ErrorIs(t, uc.UpdateStatus(ctx, created.ID, "archived"), ErrInvalidStatus)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, uuid.New(), "completed"), ErrAppointmentNotFound)
}

func TestAppointmentUsecase_UpdateKeepsStatus(t *testing.T) {
	f := newFixture()
	uc := NewAppointmentUsecase(f.log, f.repos.Appointments, f.audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, appointmentRequest())
	require.NoError(t, err)
	require.NoError(t, uc.UpdateStatus(ctx, created.ID, "completed"))

	req := appointmentRequest()
	req.Time = "11:00"
	updated, err := uc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "11:00", updated.Time)
	assert.Equal(t, "completed", updated.Status)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), ErrAppointmentNotFound)
}

func TestMedicalRecordUsecase_GetByPatient(t *testing.T) {
	f := newFixture()
	uc := NewMedicalRecordUsecase(f.log, f.repos.MedicalRecords, f.audit)
	ctx := context.Background()

	for _, pid := range []string{"p-1", "p-2", "p-1"} {
		_, err := uc.Create(ctx, &dto.MedicalRecordRequest{PatientID: pid, DoctorID: "d-1", Date: "2024-01-01", Diagnosis: "flu", Prescriptions: "rest"})
		require.NoError(t, err)
	}

	all, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := uc.GetByPatient(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestBillUsecase_CreateDefaults(t *testing.T) {
	f := newFixture()
	uc := NewBillUsecase(f.log, f.repos.Bills, f.audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.BillRequest{PatientID: "p-1", PatientName: "Jane", Items: "X-ray", TotalAmount: decimal.RequireFromString("120.50")})
	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPending), created.PaymentStatus)
	assert.False(t, created.Date.IsZero())
	assert.True(t, decimal.RequireFromString("120.5").Equal(created.TotalAmount))

	paid, err := uc.Create(ctx, &dto.BillRequest{PatientID: "p-1", Items: "Consult", PaymentStatus: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.PaymentStatus)
}

func TestBillUsecase_UpdateStatus(t *testing.T) {
	f := newFixture()
	uc := NewBillUsecase(f.log, f.repos.Bills, f.audit)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.BillRequest{PatientID: "p-1", Items: "X-ray"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(ctx, created.ID, "paid"))
	require.NoError(t, uc.UpdateStatus(ctx, created.ID, "pending"))
	assert.ErrorIs(t, uc.UpdateStatus(ctx, created.ID, "refunded"), ErrInvalidStatus)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, uuid.New(), "paid"), ErrBillNotFound)
}

func TestMedicineUsecase_Lifecycle(t *testing.T) {
	f := newFixture()
	uc := NewMedicineUsecase(f.log, f.repos.Medicines, f.audit)
	ctx := context.Background()

	req := &dto.MedicineRequest{Name: "Aspirin", Quantity: 5, Price: decimal.NewFromInt(2), ExpiryDate: "2026-01-01", Manufacturer: "Acme", Category: "Analgesic"}
	created, err := uc.Create(ctx, req)
	require.NoError(t, err)

	req.Quantity = 50
	updated, err := uc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Quantity)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.Update(ctx, created.ID, req)
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestDashboardUsecase_GetStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	patients := NewPatientUsecase(f.log, f.repos.Patients, f.audit)
	bills := NewBillUsecase(f.log, f.repos.Bills, f.audit)
	staff := NewStaffUsecase(f.log, f.repos.Staff, f.audit)

	for i := 0; i < 2; i++ {
		_, err := patients.Create(ctx, patientRequest("P"))
		require.NoError(t, err)
	}
	_, err := staff.Create(ctx, &dto.StaffRequest{Name: "S", Role: "R", Contact: "c", Email: "s@h.test", Department: "D"})
	require.NoError(t, err)
	for _, status := range []string{"pending", "paid", "", "cancelled"} {
		_, err := bills.Create(ctx, &dto.BillRequest{PatientID: "p", Items: "i", PaymentStatus: status})
		require.NoError(t, err)
	}

	stats, err := NewDashboardUsecase(f.log, f.repos.Patients, f.repos.Doctors, f.repos.Appointments, f.repos.Staff, f.repos.Bills).GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalPatients)
	assert.Equal(t, int64(0), stats.TotalDoctors)
	assert.Equal(t, int64(0), stats.TotalAppointments)
	assert.Equal(t, int64(1), stats.TotalStaff)
	assert.Equal(t, int64(2), stats.PendingBills)
}

func TestAuditLogUsecase(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := NewPatientUsecase(f.log, f.repos.Patients, f.audit).Create(ctx, patientRequest("A"))
	require.NoError(t, err)

	_, err = NewStaffUsecase(f.log, f.repos.Staff, f.audit).Create(ctx, &dto.StaffRequest{
		Name: "Sam", Role: "Nurse", Contact: "555", Email: "sam@example.com", Department: "ER",
	})
	require.NoError(t, err)

	uc := NewAuditLogUsecase(f.log, f.repos.AuditLogs)
	list, err := uc.ListAuditLogs(ctx, dto.AuditLogQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, entity.AnonymousActor, list.Logs[0].Actor)

	list, err = uc.ListAuditLogs(ctx, dto.AuditLogQuery{Entity: "staff"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, entity.AuditActionStaffCreate, list.Logs[0].Action)
	assert.Equal(t, "staff", list.Logs[0].Entity)
	assert.NotEmpty(t, list.Logs[0].EntityID)

	list, err = uc.ListAuditLogs(ctx, dto.AuditLogQuery{Entity: "bill"})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Logs)

	_, err = uc.GetAuditLog(ctx, 42)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
