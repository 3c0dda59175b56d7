package entity

type Staff struct {
	Base
	Name       string `gorm:"type:varchar(255);not null"`
	Role       string `gorm:"type:varchar(255);not null"`
	Contact    string `gorm:"type:varchar(50);not null"`
	Email      string `gorm:"type:varchar(255);not null"`
	Department string `gorm:"type:varchar(255);not null"`
}

func (Staff) TableName() string {
	return "staff"
}
