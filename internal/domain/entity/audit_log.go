package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents one mutation recorded against a stored entity
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string    `gorm:"type:varchar(255);not null;index" json:"actor"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Entity is the kind of record the entry refers to, e.g. "patient".
func (l AuditLog) Entity() string {
	return l.Metadata.StringValue("entity")
}

// EntityID is the id of the record the entry refers to.
func (l AuditLog) EntityID() string {
	return l.Metadata.StringValue("entity_id")
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// StringValue returns the value under key when it holds a string.
func (j JSON) StringValue(key string) string {
	s, _ := j[key].(string)
	return s
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions, one per mutating operation the API exposes
const (
	AuditActionPatientCreate       = "patient.create"
	AuditActionPatientUpdate       = "patient.update"
	AuditActionPatientDelete       = "patient.delete"
	AuditActionDoctorCreate        = "doctor.create"
	AuditActionDoctorUpdate        = "doctor.update"
	AuditActionDoctorDelete        = "doctor.delete"
	AuditActionStaffCreate         = "staff.create"
	AuditActionStaffDelete         = "staff.delete"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentUpdate   = "appointment.update"
	AuditActionAppointmentStatus   = "appointment.status"
	AuditActionAppointmentDelete   = "appointment.delete"
	AuditActionMedicalRecordCreate = "medical_record.create"
	AuditActionBillCreate          = "bill.create"
	AuditActionBillStatus          = "bill.status"
	AuditActionMedicineCreate      = "medicine.create"
	AuditActionMedicineUpdate      = "medicine.update"
	AuditActionMedicineDelete      = "medicine.delete"
)

// AnonymousActor is recorded when the API runs without authentication
const AnonymousActor = "anonymous"
