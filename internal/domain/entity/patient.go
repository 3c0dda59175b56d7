package entity

// Gender values accepted for patients
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// BloodGroups lists the accepted ABO/Rh groups in display order
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type Patient struct {
	Base
	Name           string `gorm:"type:varchar(255);not null"`
	Age            int    `gorm:"not null"`
	Gender         string `gorm:"type:varchar(10);not null"`
	Contact        string `gorm:"type:varchar(50);not null"`
	Address        string `gorm:"type:text;not null"`
	BloodGroup     string `gorm:"type:varchar(3);not null"`
	MedicalHistory string `gorm:"type:text"`
}

func (Patient) TableName() string {
	return "patients"
}
