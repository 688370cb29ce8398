package service

import "github.com/google/uuid"

type CompanyDTO struct {
	ID          uuid.UUID `json:"id" xml:"id"`
	Name        string    `json:"name" xml:"name"`
	FullAddress string    `json:"fullAddress" xml:"fullAddress"`
}

type CompanyForCreationDTO struct {
	Name      string                   `json:"name" binding:"required,max=60"`
	Address   string                   `json:"address" binding:"max=60"`
	Country   string                   `json:"country" binding:"max=60"`
	Employees []EmployeeForCreationDTO `json:"employees" binding:"omitempty,dive"`
}

// CompanyForUpdateDTO replaces the company fields; any employees listed are
// created under the company.
type CompanyForUpdateDTO struct {
	Name      string                   `json:"name" binding:"required,max=60"`
	Address   string                   `json:"address" binding:"max=60"`
	Country   string                   `json:"country" binding:"max=60"`
	Employees []EmployeeForCreationDTO `json:"employees" binding:"omitempty,dive"`
}
