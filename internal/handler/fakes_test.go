package handler_test

import (
	"context"

	"company-employees/internal/handler"
	"company-employees/internal/middleware"
	"company-employees/internal/service"
	"company-employees/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeCompanyService struct {
	GetAllCompaniesFn         func(ctx context.Context) ([]service.CompanyDTO, error)
	GetCompanyFn              func(ctx context.Context, id uuid.UUID) (service.CompanyDTO, error)
	CreateCompanyFn           func(ctx context.Context, req service.CompanyForCreationDTO) (service.CompanyDTO, error)
	GetByIDsFn                func(ctx context.Context, ids []uuid.UUID) ([]service.CompanyDTO, error)
	CreateCompanyCollectionFn func(ctx context.Context, req []service.CompanyForCreationDTO) ([]service.CompanyDTO, string, error)
	DeleteCompanyFn           func(ctx context.Context, id uuid.UUID) error
	UpdateCompanyFn           func(ctx context.Context, id uuid.UUID, req service.CompanyForUpdateDTO) error
}

func (f *fakeCompanyService) GetAllCompanies(ctx context.Context) ([]service.CompanyDTO, error) {
	return f.GetAllCompaniesFn(ctx)
}
func (f *fakeCompanyService) GetCompany(ctx context.Context, id uuid.UUID) (service.CompanyDTO, error) {
	return f.GetCompanyFn(ctx, id)
}
func (f *fakeCompanyService) CreateCompany(ctx context.Context, req service.CompanyForCreationDTO) (service.CompanyDTO, error) {
	return f.CreateCompanyFn(ctx, req)
}
func (f *fakeCompanyService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]service.CompanyDTO, error) {
	return f.GetByIDsFn(ctx, ids)
}
func (f *fakeCompanyService) CreateCompanyCollection(ctx context.Context, req []service.CompanyForCreationDTO) ([]service.CompanyDTO, string, error) {
	return f.CreateCompanyCollectionFn(ctx, req)
}
func (f *fakeCompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return f.DeleteCompanyFn(ctx, id)
}
func (f *fakeCompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, req service.CompanyForUpdateDTO) error {
	return f.UpdateCompanyFn(ctx, id, req)
}

type fakeEmployeeService struct {
	GetEmployeesFn func(ctx context.Context, companyID uuid.UUID) ([]service.EmployeeDTO, error)
	GetEmployeeFn  func(ctx context.Context, companyID, id uuid.UUID) (service.EmployeeDTO, error)
	CreateFn       func(ctx context.Context, companyID uuid.UUID, req service.EmployeeForCreationDTO) (service.EmployeeDTO, error)
	DeleteFn       func(ctx context.Context, companyID, id uuid.UUID) error
	UpdateFn       func(ctx context.Context, companyID, id uuid.UUID, req service.EmployeeForUpdateDTO) error
}

func (f *fakeEmployeeService) GetEmployees(ctx context.Context, companyID uuid.UUID) ([]service.EmployeeDTO, error) {
	return f.GetEmployeesFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetEmployee(ctx context.Context, companyID, id uuid.UUID) (service.EmployeeDTO, error) {
	return f.GetEmployeeFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) CreateEmployeeForCompany(ctx context.Context, companyID uuid.UUID, req service.EmployeeForCreationDTO) (service.EmployeeDTO, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeEmployeeService) DeleteEmployeeForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	return f.DeleteFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) UpdateEmployeeForCompany(ctx context.Context, companyID, id uuid.UUID, req service.EmployeeForUpdateDTO) error {
	return f.UpdateFn(ctx, companyID, id, req)
}

type fakeServices struct {
	company  *fakeCompanyService
	employee *fakeEmployeeService
}

func (f *fakeServices) Company() service.CompanyService   { return f.company }
func (f *fakeServices) Employee() service.EmployeeService { return f.employee }

func setupRouter(services service.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(middleware.Recovery(zap.NewNop()), middleware.ErrorHandler(zap.NewNop()))
	handler.RegisterRoutes(
		r.Group("/api"),
		handler.NewCompanyHandler(services, zap.NewNop()),
		handler.NewEmployeeHandler(services, zap.NewNop()),
	)
	return r
}
