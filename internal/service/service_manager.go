package service

import (
	"company-employees/internal/repository"

	"go.uber.org/zap"
)

// Manager gives handlers one entry point to the services. Both services are
// built once and hold no per-request state.
type Manager interface {
	Company() CompanyService
	Employee() EmployeeService
}

type manager struct {
	company  CompanyService
	employee EmployeeService
}

func NewManager(repos repository.Factory, logger ...*zap.Logger) Manager {
	return &manager{
		company:  NewCompanyService(repos, logger...),
		employee: NewEmployeeService(repos, logger...),
	}
}

func (m *manager) Company() CompanyService {
	return m.company
}

func (m *manager) Employee() EmployeeService {
	return m.employee
}
