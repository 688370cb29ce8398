// Package repositorytest opens throwaway in-memory databases for tests that
// need real gorm behaviour.
package repositorytest

import (
	"company-employees/internal/domain"
	"company-employees/internal/messaging/kafka"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and avoids
	// shared-cache table locks between a transaction and plain reads
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Company{}, &domain.Employee{}, &kafka.OutboxEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedCompany inserts a company directly, bypassing the unit of work.
func SeedCompany(t *testing.T, db *gorm.DB, name, address, country string) domain.Company {
	t.Helper()

	c := domain.Company{ID: uuid.New(), Name: name, Address: address, Country: country}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return c
}

// SeedEmployee inserts an employee of companyID directly.
func SeedEmployee(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, age int, position string) domain.Employee {
	t.Helper()

	e := domain.Employee{ID: uuid.New(), Name: name, Age: age, Position: position, CompanyID: companyID}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}
