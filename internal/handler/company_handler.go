package handler

import (
	"company-employees/internal/service"
	"company-employees/internal/shared/apperror"
	"company-employees/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	services service.Manager
	logger   *zap.Logger
}

func NewCompanyHandler(services service.Manager, logger ...*zap.Logger) *CompanyHandler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &CompanyHandler{services: services, logger: l}
}

func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.services.Company().GetAllCompanies(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.services.Company().GetCompany(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

func (h *CompanyHandler) GetCompanyCollection(c *gin.Context) {
	ids, err := parseIDList(c.Param("ids"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.logger.Debug("http get company collection", zap.Int("count", len(ids)))

	companies, err := h.services.Company().GetByIDs(c.Request.Context(), ids)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, companies)
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CompanyForCreationDTO
	if err := bindBody(c, &req, "CompanyForCreationDto"); err != nil {
		h.logger.Debug("http create company rejected", zap.Error(err))
		_ = c.Error(err)
		return
	}

	created, err := h.services.Company().CreateCompany(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "/api/companies/"+created.ID.String(), created)
}

func (h *CompanyHandler) CreateCompanyCollection(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// a missing body stays nil so the service can reject it
	var req []service.CompanyForCreationDTO
	if raw != nil {
		if err := binding.JSON.BindBody(raw, &req); err != nil {
			_ = c.Error(apperror.MapValidationError(err))
			return
		}
	}

	created, ids, err := h.services.Company().CreateCompanyCollection(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "/api/companies/collection/("+ids+")", created)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req service.CompanyForUpdateDTO
	if err := bindBody(c, &req, "CompanyForUpdateDto"); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Company().UpdateCompany(c.Request.Context(), id, req); err != nil {
		_ = c.Error(err)
		return
	}

	response.NoContent(c)
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Company().DeleteCompany(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.NoContent(c)
}
