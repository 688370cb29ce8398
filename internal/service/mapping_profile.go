package service

import (
	"company-employees/internal/domain"
	"strings"
)

// FullAddress joins address and country with a single space.
func FullAddress(address, country string) string {
	return strings.Join([]string{address, country}, " ")
}

func ToCompanyDTO(c domain.Company) CompanyDTO {
	return CompanyDTO{
		ID:          c.ID,
		Name:        c.Name,
		FullAddress: FullAddress(c.Address, c.Country),
	}
}

// ToCompanyDTOs never returns nil, so empty results encode as [].
func ToCompanyDTOs(companies []domain.Company) []CompanyDTO {
	out := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, ToCompanyDTO(c))
	}
	return out
}

func CompanyFromCreation(dto CompanyForCreationDTO) domain.Company {
	return domain.Company{
		Name:      dto.Name,
		Address:   dto.Address,
		Country:   dto.Country,
		Employees: EmployeesFromCreation(dto.Employees),
	}
}

// ApplyCompanyUpdate overwrites the scalar fields of c. Nested employees are
// handled by the caller.
func ApplyCompanyUpdate(dto CompanyForUpdateDTO, c *domain.Company) {
	c.Name = dto.Name
	c.Address = dto.Address
	c.Country = dto.Country
}

func ToEmployeeDTO(e domain.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       e.ID,
		Name:     e.Name,
		Age:      e.Age,
		Position: e.Position,
	}
}

func ToEmployeeDTOs(employees []domain.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToEmployeeDTO(e))
	}
	return out
}

func EmployeeFromCreation(dto EmployeeForCreationDTO) domain.Employee {
	return domain.Employee{
		Name:     dto.Name,
		Age:      dto.Age,
		Position: dto.Position,
	}
}

func EmployeesFromCreation(dtos []EmployeeForCreationDTO) []domain.Employee {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]domain.Employee, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, EmployeeFromCreation(dto))
	}
	return out
}

func ApplyEmployeeUpdate(dto EmployeeForUpdateDTO, e *domain.Employee) {
	e.Name = dto.Name
	e.Age = dto.Age
	e.Position = dto.Position
}
