package repository

import (
	"company-employees/internal/domain"
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type CompanyRepository interface {
	GetAllCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetCompanyForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error)
	CreateCompany(company *domain.Company)
	DeleteCompany(company *domain.Company)
}

type companyRepository struct {
	Base[domain.Company]
}

func newCompanyRepository(s *session) CompanyRepository {
	return &companyRepository{Base: newBase[domain.Company](s)}
}

func (r *companyRepository) GetAllCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.FindByCondition(ctx, OrderByName())
}

func (r *companyRepository) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	companies, err := r.FindByCondition(ctx, ByID(id))
	if err != nil {
		return nil, err
	}
	return firstOrNil(companies), nil
}

func (r *companyRepository) GetCompanyForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	companies, err := r.FindByConditionForUpdate(ctx, ByID(id))
	if err != nil {
		return nil, err
	}
	return firstPtrOrNil(companies), nil
}

func (r *companyRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error) {
	return r.FindByCondition(ctx, ByIDs(ids))
}

// CreateCompany assigns ids to the company and any nested employees before
// staging the insert.
func (r *companyRepository) CreateCompany(company *domain.Company) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	for i := range company.Employees {
		if company.Employees[i].ID == uuid.Nil {
			company.Employees[i].ID = uuid.New()
		}
		company.Employees[i].CompanyID = company.ID
	}
	r.Create(company)
}

func (r *companyRepository) DeleteCompany(company *domain.Company) {
	r.Delete(company)
}
