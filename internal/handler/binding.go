package handler

import (
	"bytes"
	domainerrors "company-employees/internal/domain/errors"
	"company-employees/internal/shared/apperror"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

var jsonNull = []byte("null")

// readBody returns the raw request body, or nil when it is empty or the
// literal null.
func readBody(c *gin.Context) ([]byte, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	return raw, nil
}

// bindBody decodes and validates the body into obj. A missing body is
// reported as "<dtoName> object is null".
func bindBody(c *gin.Context, obj any, dtoName string) error {
	raw, err := readBody(c)
	if err != nil {
		return err
	}
	if raw == nil {
		return domainerrors.MissingRequestBody(dtoName)
	}
	if err := binding.JSON.BindBody(raw, obj); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	value := c.Param(param)
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.InvalidIdentifier(param, value)
	}
	return id, nil
}

// parseIDList accepts "(id1,id2)" as well as "id1,id2". An empty list yields
// nil.
func parseIDList(value string) ([]uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	if strings.TrimSpace(trimmed) == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, domainerrors.InvalidIdentifier("ids", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
