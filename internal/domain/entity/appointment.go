package entity

// AppointmentStatus represents where an appointment stands. Any status may
// follow any other.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known appointment statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment keeps a snapshot of the patient and doctor names taken when it
// was booked. Renaming either party later does not touch it.
type Appointment struct {
	Base
	PatientID   string            `gorm:"type:varchar(64);not null;index"`
	PatientName string            `gorm:"type:varchar(255);not null"`
	DoctorID    string            `gorm:"type:varchar(64);not null;index"`
	DoctorName  string            `gorm:"type:varchar(255);not null"`
	Date        string            `gorm:"type:varchar(32);not null"`
	Time        string            `gorm:"type:varchar(16);not null"`
	Reason      string            `gorm:"type:text;not null"`
	Notes       string            `gorm:"type:text"`
	Status      AppointmentStatus `gorm:"type:varchar(16);not null;index"`
}

func (Appointment) TableName() string {
	return "appointments"
}
