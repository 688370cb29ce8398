package app

import (
	"company-employees/internal/domain"
	"company-employees/internal/messaging/kafka"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Company{},
		&domain.Employee{},
		&kafka.OutboxEvent{},
	)
}
