package service

import (
	"company-employees/internal/domain"
	domainerrors "company-employees/internal/domain/errors"
	"company-employees/internal/events"
	"company-employees/internal/repository"
	"company-employees/internal/shared/contextutil"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EmployeeService interface {
	GetEmployees(ctx context.Context, companyID uuid.UUID) ([]EmployeeDTO, error)
	GetEmployee(ctx context.Context, companyID, id uuid.UUID) (EmployeeDTO, error)
	CreateEmployeeForCompany(ctx context.Context, companyID uuid.UUID, employee EmployeeForCreationDTO) (EmployeeDTO, error)
	DeleteEmployeeForCompany(ctx context.Context, companyID, id uuid.UUID) error
	UpdateEmployeeForCompany(ctx context.Context, companyID, id uuid.UUID, employee EmployeeForUpdateDTO) error
}

type employeeService struct {
	repos  repository.Factory
	logger *zap.Logger
}

func NewEmployeeService(repos repository.Factory, logger ...*zap.Logger) EmployeeService {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &employeeService{repos: repos, logger: l}
}

func (s *employeeService) GetEmployees(ctx context.Context, companyID uuid.UUID) ([]EmployeeDTO, error) {
	repos := s.repos.New()
	if err := checkIfCompanyExists(ctx, repos, companyID); err != nil {
		return nil, err
	}

	employees, err := repos.Employee().GetEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return ToEmployeeDTOs(employees), nil
}

func (s *employeeService) GetEmployee(ctx context.Context, companyID, id uuid.UUID) (EmployeeDTO, error) {
	repos := s.repos.New()
	if err := checkIfCompanyExists(ctx, repos, companyID); err != nil {
		return EmployeeDTO{}, err
	}

	employee, err := getEmployeeForCompanyAndCheckIfItExists(ctx, repos, companyID, id)
	if err != nil {
		return EmployeeDTO{}, err
	}
	return ToEmployeeDTO(*employee), nil
}

func (s *employeeService) CreateEmployeeForCompany(
	ctx context.Context,
	companyID uuid.UUID,
	dto EmployeeForCreationDTO,
) (EmployeeDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()
	if err := checkIfCompanyExists(ctx, repos, companyID); err != nil {
		return EmployeeDTO{}, err
	}

	employee := EmployeeFromCreation(dto)
	repos.Employee().CreateEmployeeForCompany(companyID, &employee)
	if err := stageEmployeeEvent(ctx, repos, events.EmployeeCreated, employee); err != nil {
		return EmployeeDTO{}, err
	}

	if err := repos.Save(ctx); err != nil {
		log.Error("create employee failed", zap.String("company_id", companyID.String()), zap.Error(err))
		return EmployeeDTO{}, err
	}

	log.Info("employee created",
		zap.String("company_id", companyID.String()),
		zap.String("employee_id", employee.ID.String()),
	)
	return ToEmployeeDTO(employee), nil
}

func (s *employeeService) DeleteEmployeeForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()
	if err := checkIfCompanyExists(ctx, repos, companyID); err != nil {
		return err
	}

	employee, err := getEmployeeForCompanyAndCheckIfItExists(ctx, repos, companyID, id)
	if err != nil {
		return err
	}

	repos.Employee().DeleteEmployee(employee)
	if err := stageEmployeeEvent(ctx, repos, events.EmployeeDeleted, *employee); err != nil {
		return err
	}

	if err := repos.Save(ctx); err != nil {
		log.Error("delete employee failed", zap.String("employee_id", id.String()), zap.Error(err))
		return err
	}

	log.Info("employee deleted",
		zap.String("company_id", companyID.String()),
		zap.String("employee_id", id.String()),
	)
	return nil
}

// UpdateEmployeeForCompany changes the tracked employee in place; Save writes
// the difference under the same id.
func (s *employeeService) UpdateEmployeeForCompany(
	ctx context.Context,
	companyID, id uuid.UUID,
	dto EmployeeForUpdateDTO,
) error {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()
	if err := checkIfCompanyExists(ctx, repos, companyID); err != nil {
		return err
	}

	employee, err := repos.Employee().GetEmployeeForUpdate(ctx, companyID, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domainerrors.EmployeeNotFound(id)
	}

	ApplyEmployeeUpdate(dto, employee)
	if err := repos.Save(ctx); err != nil {
		log.Error("update employee failed", zap.String("employee_id", id.String()), zap.Error(err))
		return err
	}

	log.Info("employee updated", zap.String("employee_id", id.String()))
	return nil
}

func checkIfCompanyExists(ctx context.Context, repos repository.Manager, companyID uuid.UUID) error {
	company, err := repos.Company().GetCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domainerrors.CompanyNotFound(companyID)
	}
	return nil
}

func getEmployeeForCompanyAndCheckIfItExists(
	ctx context.Context,
	repos repository.Manager,
	companyID, id uuid.UUID,
) (*domain.Employee, error) {
	employee, err := repos.Employee().GetEmployee(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domainerrors.EmployeeNotFound(id)
	}
	return employee, nil
}
