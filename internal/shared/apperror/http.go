package apperror

import "errors"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves the status and client-facing message for err. Errors that
// are not AppErrors are reported as internal errors without leaking details.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  StatusOf(appErr),
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
