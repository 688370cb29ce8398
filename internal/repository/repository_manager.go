package repository

import (
	"context"

	"gorm.io/gorm"
)

// Manager is one unit of work: repositories share its session and Save
// commits everything they staged in one transaction.
//
//go:generate mockgen -source=repository_manager.go -destination=mock/repository_manager_mock.go -package=mock
type Manager interface {
	Company() CompanyRepository
	Employee() EmployeeRepository
	Outbox() OutboxRepository
	Save(ctx context.Context) error
}

// Factory starts units of work. It is safe for concurrent use.
type Factory interface {
	New() Manager
}

type manager struct {
	session  *session
	company  CompanyRepository
	employee EmployeeRepository
	outbox   OutboxRepository
}

func newManager(db *gorm.DB) *manager {
	s := newSession(db)
	return &manager{
		session:  s,
		company:  newCompanyRepository(s),
		employee: newEmployeeRepository(s),
		outbox:   newOutboxRepository(s),
	}
}

func (m *manager) Company() CompanyRepository {
	return m.company
}

func (m *manager) Employee() EmployeeRepository {
	return m.employee
}

func (m *manager) Outbox() OutboxRepository {
	return m.outbox
}

func (m *manager) Save(ctx context.Context) error {
	if err := m.session.commit(ctx); err != nil {
		return mapPersistenceError(err, "Failed to save changes")
	}
	return nil
}

type factory struct {
	db *gorm.DB
}

func NewFactory(db *gorm.DB) Factory {
	return &factory{db: db}
}

func (f *factory) New() Manager {
	return newManager(f.db)
}
