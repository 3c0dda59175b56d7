package repository

import (
	"context"
	"testing"
	"time"

	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormRepository_FindAllOrdersByInsertion(t *testing.T) {
	db, mock := newMockDB(t)
	repos := NewGormRepositories(db)

	first, second := uuid.New(), uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "seq", "name", "age"}).
		AddRow(first.String(), now, 1, "Ann", 30).
		AddRow(second.String(), now, 2, "Bob", 41)
	mock.ExpectQuery(`SELECT \* FROM "patients" ORDER BY seq ASC`).WillReturnRows(rows)

	patients, err := repos.Patients.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, first, patients[0].ID)
	assert.Equal(t, "Bob", patients[1].Name)
	assert.Equal(t, int64(2), patients[1].Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repos := NewGormRepositories(db)

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	doctor, err := repos.Doctors.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, doctor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repos := NewGormRepositories(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "staff"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repos.Staff.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repos := NewGormRepositories(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "medicines" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repos.Medicines.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepository_CountByPaymentStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bills" WHERE payment_status = \$1`).
		WithArgs(string(entity.PaymentStatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.CountByPaymentStatus(context.Background(), entity.PaymentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicalRecordRepository_FindByPatientID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicalRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "patient_id", "diagnosis"}).
		AddRow(uuid.NewString(), "p-1", "flu")
	mock.ExpectQuery(`SELECT \* FROM "medical_records" WHERE patient_id = \$1 ORDER BY seq ASC`).
		WithArgs("p-1").
		WillReturnRows(rows)

	records, err := repo.FindByPatientID(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "flu", records[0].Diagnosis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditLogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "actor", "action", "metadata", "created_at"}).
		AddRow(1, "admin", entity.AuditActionPatientCreate, []byte(`{"entity":"patient"}`), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" ORDER BY id ASC`).WillReturnRows(rows)

	logs, err := repo.FindAll(context.Background(), domainRepo.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "admin", logs[0].Actor)
	assert.Equal(t, "patient", logs[0].Entity())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_FindAllByEntity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditLogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "actor", "action", "metadata", "created_at"}).
		AddRow(3, "admin", entity.AuditActionPatientUpdate, []byte(`{"entity":"patient","entity_id":"p-1"}`), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE metadata->>'entity' = \$1 AND metadata->>'entity_id' = \$2 ORDER BY id ASC`).
		WithArgs("patient", "p-1").
		WillReturnRows(rows)

	logs, err := repo.FindAll(context.Background(), domainRepo.AuditLogFilter{Entity: "patient", EntityID: "p-1"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "p-1", logs[0].EntityID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_CreateLeavesSeqToDatabase(t *testing.T) {
	db, mock := newMockDB(t)
	repos := NewGormRepositories(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "staff" \("id","created_at","name","role","contact","email","department"\) VALUES`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	member := &entity.Staff{Name: "Sam", Role: "Nurse", Contact: "555", Email: "sam@example.com", Department: "ER"}
	require.NoError(t, repos.Staff.Create(context.Background(), member))
	assert.NotEqual(t, uuid.Nil, member.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
