package handler

import (
	"company-employees/internal/service"
	"company-employees/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	services service.Manager
	logger   *zap.Logger
}

func NewEmployeeHandler(services service.Manager, logger ...*zap.Logger) *EmployeeHandler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &EmployeeHandler{services: services, logger: l}
}

func (h *EmployeeHandler) GetEmployeesForCompany(c *gin.Context) {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	employees, err := h.services.Employee().GetEmployees(c.Request.Context(), companyID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeeForCompany(c *gin.Context) {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	employee, err := h.services.Employee().GetEmployee(c.Request.Context(), companyID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployeeForCompany(c *gin.Context) {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req service.EmployeeForCreationDTO
	if err := bindBody(c, &req, "EmployeeForCreationDto"); err != nil {
		h.logger.Debug("http create employee rejected",
			zap.String("company_id", companyID.String()),
			zap.Error(err),
		)
		_ = c.Error(err)
		return
	}

	created, err := h.services.Employee().CreateEmployeeForCompany(c.Request.Context(), companyID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "/api/companies/"+companyID.String()+"/employees/"+created.ID.String(), created)
}

func (h *EmployeeHandler) UpdateEmployeeForCompany(c *gin.Context) {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req service.EmployeeForUpdateDTO
	if err := bindBody(c, &req, "EmployeeForUpdateDto"); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Employee().UpdateEmployeeForCompany(c.Request.Context(), companyID, id, req); err != nil {
		_ = c.Error(err)
		return
	}

	response.NoContent(c)
}

func (h *EmployeeHandler) DeleteEmployeeForCompany(c *gin.Context) {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Employee().DeleteEmployeeForCompany(c.Request.Context(), companyID, id); err != nil {
		_ = c.Error(err)
		return
	}

	response.NoContent(c)
}
