package domain

import "github.com/google/uuid"

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(30);not null"`
	Age       int       `gorm:"not null"`
	Position  string    `gorm:"type:varchar(20);not null"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Employee) TableName() string {
	return "employees"
}
