package domain

import (
	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(60);not null"`
	Address   string     `gorm:"type:varchar(60);not null"`
	Country   string     `gorm:"type:varchar(60)"`
	Employees []Employee `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (Company) TableName() string {
	return "companies"
}
