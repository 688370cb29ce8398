package service

import "github.com/google/uuid"

type EmployeeDTO struct {
	ID       uuid.UUID `json:"id" xml:"id"`
	Name     string    `json:"name" xml:"name"`
	Age      int       `json:"age" xml:"age"`
	Position string    `json:"position" xml:"position"`
}

type EmployeeForCreationDTO struct {
	Name     string `json:"name" binding:"required,max=30"`
	Age      int    `json:"age" binding:"required,gt=18"`
	Position string `json:"position" binding:"required,max=20"`
}

type EmployeeForUpdateDTO struct {
	Name     string `json:"name" binding:"required,max=30"`
	Age      int    `json:"age" binding:"required,gt=18"`
	Position string `json:"position" binding:"required,max=20"`
}
