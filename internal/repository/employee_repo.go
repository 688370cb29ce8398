package repository

import (
	"company-employees/internal/domain"
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type EmployeeRepository interface {
	GetEmployees(ctx context.Context, companyID uuid.UUID) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, companyID, id uuid.UUID) (*domain.Employee, error)
	GetEmployeeForUpdate(ctx context.Context, companyID, id uuid.UUID) (*domain.Employee, error)
	CreateEmployeeForCompany(companyID uuid.UUID, employee *domain.Employee)
	DeleteEmployee(employee *domain.Employee)
}

type employeeRepository struct {
	Base[domain.Employee]
}

func newEmployeeRepository(s *session) EmployeeRepository {
	return &employeeRepository{Base: newBase[domain.Employee](s)}
}

func (r *employeeRepository) GetEmployees(ctx context.Context, companyID uuid.UUID) ([]domain.Employee, error) {
	return r.FindByCondition(ctx, ByCompany(companyID), OrderByName())
}

func (r *employeeRepository) GetEmployee(ctx context.Context, companyID, id uuid.UUID) (*domain.Employee, error) {
	employees, err := r.FindByCondition(ctx, ByCompany(companyID), ByID(id))
	if err != nil {
		return nil, err
	}
	return firstOrNil(employees), nil
}

func (r *employeeRepository) GetEmployeeForUpdate(ctx context.Context, companyID, id uuid.UUID) (*domain.Employee, error) {
	employees, err := r.FindByConditionForUpdate(ctx, ByCompany(companyID), ByID(id))
	if err != nil {
		return nil, err
	}
	return firstPtrOrNil(employees), nil
}

// CreateEmployeeForCompany always uses companyID, whatever the caller put in
// employee.CompanyID.
func (r *employeeRepository) CreateEmployeeForCompany(companyID uuid.UUID, employee *domain.Employee) {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	employee.CompanyID = companyID
	r.Create(employee)
}

func (r *employeeRepository) DeleteEmployee(employee *domain.Employee) {
	r.Delete(employee)
}
