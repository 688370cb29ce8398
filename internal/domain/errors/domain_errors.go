package domainerrors

import (
	"company-employees/internal/shared/apperror"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

const (
	CodeCompanyNotFound             = "COMPANY_NOT_FOUND"
	CodeEmployeeNotFound            = "EMPLOYEE_NOT_FOUND"
	CodeIdParametersBadRequest      = "ID_PARAMETERS_BAD_REQUEST"
	CodeCollectionByIdsBadRequest   = "COLLECTION_BY_IDS_BAD_REQUEST"
	CodeCompanyCollectionBadRequest = "COMPANY_COLLECTION_BAD_REQUEST"
	CodeInvalidIdentifier           = "INVALID_IDENTIFIER"
	CodeMissingRequestBody          = "MISSING_REQUEST_BODY"
)

// Not found family (404).
var (
	ErrCompanyNotFound = apperror.New(
		CodeCompanyNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		CodeEmployeeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)

// Bad request family (400).
var (
	ErrIdParametersBadRequest = apperror.New(
		CodeIdParametersBadRequest,
		"Parameter ids is null",
		http.StatusBadRequest,
	)

	ErrCollectionByIdsBadRequest = apperror.New(
		CodeCollectionByIdsBadRequest,
		"Collection count mismatch comparing to ids.",
		http.StatusBadRequest,
	)

	ErrCompanyCollectionBadRequest = apperror.New(
		CodeCompanyCollectionBadRequest,
		"Company collection sent from a client is null.",
		http.StatusBadRequest,
	)

	ErrInvalidIdentifier = apperror.New(
		CodeInvalidIdentifier,
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrMissingRequestBody = apperror.New(
		CodeMissingRequestBody,
		"Request body is null",
		http.StatusBadRequest,
	)
)

func CompanyNotFound(id uuid.UUID) *apperror.AppError {
	return ErrCompanyNotFound.WithMessage(
		fmt.Sprintf("The company with id: %s doesn't exist in the database.", id),
	)
}

func EmployeeNotFound(id uuid.UUID) *apperror.AppError {
	return ErrEmployeeNotFound.WithMessage(
		fmt.Sprintf("Employee with id: %s doesn't exist in the database.", id),
	)
}

// InvalidIdentifier reports a path or query value that is not a uuid.
func InvalidIdentifier(name, value string) *apperror.AppError {
	return ErrInvalidIdentifier.WithMessage(
		fmt.Sprintf("The value '%s' is not a valid %s.", value, name),
	)
}

// MissingRequestBody mirrors the "<Dto> object is null" responses for empty
// or literal null payloads.
func MissingRequestBody(dtoName string) *apperror.AppError {
	return ErrMissingRequestBody.WithMessage(fmt.Sprintf("%s object is null", dtoName))
}
