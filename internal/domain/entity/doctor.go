package entity

type Doctor struct {
	Base
	Name           string `gorm:"type:varchar(255);not null"`
	Specialization string `gorm:"type:varchar(255);not null"`
	Contact        string `gorm:"type:varchar(50);not null"`
	Email          string `gorm:"type:varchar(255);not null"`
	Department     string `gorm:"type:varchar(255);not null"`
	Availability   string `gorm:"type:text;not null"`
}

func (Doctor) TableName() string {
	return "doctors"
}
