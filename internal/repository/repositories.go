package repository

import (
	"go-hospital-admin/internal/domain/entity"
	domainRepo "go-hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

// Repositories bundles one repository per stored entity kind.
type Repositories struct {
	Patients       domainRepo.PatientRepository
	Doctors        domainRepo.DoctorRepository
	Staff          domainRepo.StaffRepository
	Appointments   domainRepo.AppointmentRepository
	MedicalRecords domainRepo.MedicalRecordRepository
	Bills          domainRepo.BillRepository
	Medicines      domainRepo.MedicineRepository
	AuditLogs      domainRepo.AuditLogRepository
}

// NewGormRepositories wires every repository to the given database.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Patients:       newGormRepository[entity.Patient](db),
		Doctors:        newGormRepository[entity.Doctor](db),
		Staff:          newGormRepository[entity.Staff](db),
		Appointments:   newGormRepository[entity.Appointment](db),
		MedicalRecords: NewMedicalRecordRepository(db),
		Bills:          NewBillRepository(db),
		Medicines:      newGormRepository[entity.Medicine](db),
		AuditLogs:      NewAuditLogRepository(db),
	}
}

// NewMemoryRepositories returns process-local repositories, used when no
// database is configured and throughout the tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Patients:       newMemoryRepository[entity.Patient, *entity.Patient](),
		Doctors:        newMemoryRepository[entity.Doctor, *entity.Doctor](),
		Staff:          newMemoryRepository[entity.Staff, *entity.Staff](),
		Appointments:   newMemoryRepository[entity.Appointment, *entity.Appointment](),
		MedicalRecords: NewMemoryMedicalRecordRepository(),
		Bills:          NewMemoryBillRepository(),
		Medicines:      newMemoryRepository[entity.Medicine, *entity.Medicine](),
		AuditLogs:      NewMemoryAuditLogRepository(),
	}
}
