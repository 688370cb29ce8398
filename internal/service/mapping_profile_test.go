package service_test

import (
	"testing"

	"company-employees/internal/domain"
	"company-employees/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToCompanyDTO_FullAddress(t *testing.T) {
	id := uuid.New()
	dto := service.ToCompanyDTO(domain.Company{ID: id, Name: "Acme", Address: "1 Main St", Country: "US"})

	assert.Equal(t, id, dto.ID)
	assert.Equal(t, "Acme", dto.Name)
	assert.Equal(t, "1 Main St US", dto.FullAddress)
}

func TestToDTOs_EmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, service.ToCompanyDTOs(nil))
	assert.NotNil(t, service.ToEmployeeDTOs(nil))
}

func TestCompanyFromCreation_NestedEmployees(t *testing.T) {
	c := service.CompanyFromCreation(service.CompanyForCreationDTO{
		Name:    "Acme",
		Address: "1 Main St",
		Country: "US",
		Employees: []service.EmployeeForCreationDTO{
			{Name: "Sam", Age: 30, Position: "Engineer"},
		},
	})

	assert.Equal(t, uuid.Nil, c.ID)
	assert.Len(t, c.Employees, 1)
	assert.Equal(t, "Engineer", c.Employees[0].Position)
}

func TestApplyEmployeeUpdate_KeepsIdentity(t *testing.T) {
	id, companyID := uuid.New(), uuid.New()
	e := &domain.Employee{ID: id, CompanyID: companyID, Name: "Sam", Age: 30, Position: "Engineer"}

	service.ApplyEmployeeUpdate(service.EmployeeForUpdateDTO{Name: "Sam", Age: 31, Position: "Lead"}, e)

	assert.Equal(t, id, e.ID)
	assert.Equal(t, companyID, e.CompanyID)
	assert.Equal(t, 31, e.Age)
	assert.Equal(t, "Lead", e.Position)
}
