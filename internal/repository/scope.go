package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope is a reusable gorm condition passed to FindByCondition.
type Scope = func(db *gorm.DB) *gorm.DB

func ByID(id uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func ByIDs(ids []uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN ?", ids)
	}
}

func ByCompany(companyID uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

func OrderByName() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}
}
