package service

import (
	"company-employees/internal/domain"
	domainerrors "company-employees/internal/domain/errors"
	"company-employees/internal/events"
	"company-employees/internal/repository"
	"company-employees/internal/shared/contextutil"
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const allCompaniesKey = "companies:all"

type CompanyService interface {
	GetAllCompanies(ctx context.Context) ([]CompanyDTO, error)
	GetCompany(ctx context.Context, id uuid.UUID) (CompanyDTO, error)
	CreateCompany(ctx context.Context, company CompanyForCreationDTO) (CompanyDTO, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]CompanyDTO, error)
	CreateCompanyCollection(ctx context.Context, companies []CompanyForCreationDTO) ([]CompanyDTO, string, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	UpdateCompany(ctx context.Context, id uuid.UUID, company CompanyForUpdateDTO) error
}

type companyService struct {
	repos  repository.Factory
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewCompanyService(repos repository.Factory, logger ...*zap.Logger) CompanyService {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &companyService{
		repos:  repos,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *companyService) GetAllCompanies(ctx context.Context) ([]CompanyDTO, error) {
	// concurrent list requests share one query; it must outlive any single
	// caller that disconnects
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(allCompaniesKey, func() (any, error) {
		companies, err := s.repos.New().Company().GetAllCompanies(sharedCtx)
		if err != nil {
			return nil, err
		}
		return ToCompanyDTOs(companies), nil
	})
	if err != nil {
		s.logger.Error("get all companies failed", zap.Error(err))
		return nil, err
	}

	shared := v.([]CompanyDTO)
	out := make([]CompanyDTO, len(shared))
	copy(out, shared)
	return out, nil
}

func (s *companyService) GetCompany(ctx context.Context, id uuid.UUID) (CompanyDTO, error) {
	company, err := s.repos.New().Company().GetCompany(ctx, id)
	if err != nil {
		return CompanyDTO{}, err
	}
	if company == nil {
		return CompanyDTO{}, domainerrors.CompanyNotFound(id)
	}
	return ToCompanyDTO(*company), nil
}

func (s *companyService) CreateCompany(ctx context.Context, dto CompanyForCreationDTO) (CompanyDTO, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()

	company, err := s.stageCompany(ctx, repos, dto)
	if err != nil {
		return CompanyDTO{}, err
	}

	if err := repos.Save(ctx); err != nil {
		log.Error("create company failed", zap.String("name", dto.Name), zap.Error(err))
		return CompanyDTO{}, err
	}

	log.Info("company created",
		zap.String("company_id", company.ID.String()),
		zap.Int("employees", len(company.Employees)),
	)
	return ToCompanyDTO(*company), nil
}

func (s *companyService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]CompanyDTO, error) {
	if ids == nil {
		return nil, domainerrors.ErrIdParametersBadRequest
	}

	companies, err := s.repos.New().Company().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(companies) != len(ids) {
		return nil, domainerrors.ErrCollectionByIdsBadRequest
	}
	return ToCompanyDTOs(companies), nil
}

func (s *companyService) CreateCompanyCollection(ctx context.Context, dtos []CompanyForCreationDTO) ([]CompanyDTO, string, error) {
	if dtos == nil {
		return nil, "", domainerrors.ErrCompanyCollectionBadRequest
	}
	if len(dtos) == 0 {
		return []CompanyDTO{}, "", nil
	}

	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()

	created := make([]CompanyDTO, 0, len(dtos))
	ids := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		company, err := s.stageCompany(ctx, repos, dto)
		if err != nil {
			return nil, "", err
		}
		created = append(created, ToCompanyDTO(*company))
		ids = append(ids, company.ID.String())
	}

	// one Save keeps the batch all-or-nothing
	if err := repos.Save(ctx); err != nil {
		log.Error("create company collection failed", zap.Int("count", len(dtos)), zap.Error(err))
		return nil, "", err
	}

	log.Info("company collection created", zap.Int("count", len(created)))
	return created, strings.Join(ids, ","), nil
}

func (s *companyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()

	company, err := repos.Company().GetCompany(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domainerrors.CompanyNotFound(id)
	}

	repos.Company().DeleteCompany(company)
	if err := stageCompanyEvent(ctx, repos, events.CompanyDeleted, *company); err != nil {
		return err
	}

	if err := repos.Save(ctx); err != nil {
		log.Error("delete company failed", zap.String("company_id", id.String()), zap.Error(err))
		return err
	}

	log.Info("company deleted", zap.String("company_id", id.String()))
	return nil
}

func (s *companyService) UpdateCompany(ctx context.Context, id uuid.UUID, dto CompanyForUpdateDTO) error {
	log := contextutil.GetLogger(ctx, s.logger)
	repos := s.repos.New()

	company, err := repos.Company().GetCompanyForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domainerrors.CompanyNotFound(id)
	}

	ApplyCompanyUpdate(dto, company)
	for _, e := range EmployeesFromCreation(dto.Employees) {
		employee := e
		repos.Employee().CreateEmployeeForCompany(company.ID, &employee)
		if err := stageEmployeeEvent(ctx, repos, events.EmployeeCreated, employee); err != nil {
			return err
		}
	}

	if err := repos.Save(ctx); err != nil {
		log.Error("update company failed", zap.String("company_id", id.String()), zap.Error(err))
		return err
	}

	log.Info("company updated", zap.String("company_id", id.String()))
	return nil
}

// stageCompany maps dto, stages the insert with its nested employees and
// queues the matching lifecycle events. The returned company carries the
// ids that Save will persist.
func (s *companyService) stageCompany(ctx context.Context, repos repository.Manager, dto CompanyForCreationDTO) (*domain.Company, error) {
	company := CompanyFromCreation(dto)
	repos.Company().CreateCompany(&company)

	if err := stageCompanyEvent(ctx, repos, events.CompanyCreated, company); err != nil {
		return nil, err
	}
	for _, e := range company.Employees {
		if err := stageEmployeeEvent(ctx, repos, events.EmployeeCreated, e); err != nil {
			return nil, err
		}
	}
	return &company, nil
}
