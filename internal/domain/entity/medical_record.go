package entity

type MedicalRecord struct {
	Base
	PatientID     string `gorm:"type:varchar(64);not null;index"`
	PatientName   string `gorm:"type:varchar(255);not null"`
	DoctorID      string `gorm:"type:varchar(64);not null;index"`
	DoctorName    string `gorm:"type:varchar(255);not null"`
	Date          string `gorm:"type:varchar(32);not null"`
	Diagnosis     string `gorm:"type:text;not null"`
	Prescriptions string `gorm:"type:text;not null"`
	Tests         string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
