package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the company and employee endpoints on api. The
// create middlewares (idempotency, stricter rate limits) wrap POST routes
// only.
func RegisterRoutes(
	api *gin.RouterGroup,
	companies *CompanyHandler,
	employees *EmployeeHandler,
	create ...gin.HandlerFunc,
) {
	withCreate := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, create...), h)
	}

	c := api.Group("/companies")
	{
		c.GET("", companies.GetCompanies)
		c.POST("", withCreate(companies.CreateCompany)...)
		c.GET("/collection/:ids", companies.GetCompanyCollection)
		c.POST("/collection", withCreate(companies.CreateCompanyCollection)...)
		c.GET("/:companyId", companies.GetCompany)
		c.PUT("/:companyId", companies.UpdateCompany)
		c.DELETE("/:companyId", companies.DeleteCompany)
	}

	e := c.Group("/:companyId/employees")
	{
		e.GET("", employees.GetEmployeesForCompany)
		e.POST("", withCreate(employees.CreateEmployeeForCompany)...)
		e.GET("/:id", employees.GetEmployeeForCompany)
		e.PUT("/:id", employees.UpdateEmployeeForCompany)
		e.DELETE("/:id", employees.DeleteEmployeeForCompany)
	}
}
