package handler_test

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "company-employees/internal/domain/errors"
	"company-employees/internal/service"
	"company-employees/internal/shared/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetails {
	t.Helper()
	var body response.ErrorDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCompanyHandler_GetCompanies(t *testing.T) {
	svc := &fakeCompanyService{
		GetAllCompaniesFn: func(ctx context.Context) ([]service.CompanyDTO, error) {
			return []service.CompanyDTO{{ID: uuid.New(), Name: "Acme", FullAddress: "1 Main St US"}}, nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	w := serve(r, http.MethodGet, "/api/companies", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []service.CompanyDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1 Main St US", got[0].FullAddress)
	assert.Contains(t, w.Body.String(), `"fullAddress"`)
}

func TestCompanyHandler_GetCompanies_XML(t *testing.T) {
	id := uuid.New()
	svc := &fakeCompanyService{
		GetAllCompaniesFn: func(ctx context.Context) ([]service.CompanyDTO, error) {
			return []service.CompanyDTO{{ID: id, Name: "Acme", FullAddress: "1 Main St US"}}, nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	req.Header.Set("Accept", "application/xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	var got struct {
		Items []service.CompanyDTO `xml:"item"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, id, got.Items[0].ID)
	assert.Equal(t, "1 Main St US", got.Items[0].FullAddress)
}

func TestCompanyHandler_GetCompany(t *testing.T) {
	id := uuid.New()
	svc := &fakeCompanyService{
		GetCompanyFn: func(ctx context.Context, got uuid.UUID) (service.CompanyDTO, error) {
			if got != id {
				return service.CompanyDTO{}, domainerrors.CompanyNotFound(got)
			}
			return service.CompanyDTO{ID: id, Name: "Acme"}, nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	t.Run("found", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/"+id.String(), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		missing := uuid.New()
		w := serve(r, http.MethodGet, "/api/companies/"+missing.String(), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := errorBody(t, w)
		assert.Equal(t, http.StatusNotFound, body.StatusCode)
		assert.Equal(t, "The company with id: "+missing.String()+" doesn't exist in the database.", body.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_CreateCompany(t *testing.T) {
	id := uuid.New()
	svc := &fakeCompanyService{
		CreateCompanyFn: func(ctx context.Context, req service.CompanyForCreationDTO) (service.CompanyDTO, error) {
			assert.Equal(t, "Acme", req.Name)
			require.Len(t, req.Employees, 1)
			return service.CompanyDTO{ID: id, Name: req.Name, FullAddress: req.Address + " " + req.Country}, nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	t.Run("created", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies",
			`{"name":"Acme","address":"1 Main St","country":"US","employees":[{"name":"Sam","age":30,"position":"Engineer"}]}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/companies/"+id.String(), w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), id.String())
	})

	t.Run("null body", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies", "null")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "CompanyForCreationDto object is null", errorBody(t, w).Message)
	})

	t.Run("missing name", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies", `{"address":"1 Main St"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name is required", errorBody(t, w).Message)
	})

	t.Run("invalid nested employee", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies",
			`{"name":"Acme","employees":[{"name":"Kid","age":12,"position":"Intern"}]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Age must be greater than 18", errorBody(t, w).Message)
	})
}

func TestCompanyHandler_GetCompanyCollection(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	var received []uuid.UUID
	svc := &fakeCompanyService{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]service.CompanyDTO, error) {
			received = ids
			if ids == nil {
				return nil, domainerrors.ErrIdParametersBadRequest
			}
			return []service.CompanyDTO{{ID: a}, {ID: b}}, nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	t.Run("parenthesised list", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/collection/("+a.String()+","+b.String()+")", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uuid.UUID{a, b}, received)
	})

	t.Run("bare list", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/collection/"+a.String()+","+b.String(), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uuid.UUID{a, b}, received)
	})

	t.Run("empty list", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/collection/()", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Parameter ids is null", errorBody(t, w).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/companies/collection/(nope)", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_CreateCompanyCollection(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	svc := &fakeCompanyService{
		CreateCompanyCollectionFn: func(ctx context.Context, req []service.CompanyForCreationDTO) ([]service.CompanyDTO, string, error) {
			if req == nil {
				return nil, "", domainerrors.ErrCompanyCollectionBadRequest
			}
			return []service.CompanyDTO{{ID: a}, {ID: b}}, a.String() + "," + b.String(), nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	t.Run("created", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies/collection", `[{"name":"Acme"},{"name":"Zeta"}]`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/companies/collection/("+a.String()+","+b.String()+")", w.Header().Get("Location"))
	})

	t.Run("null body", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies/collection", "null")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Company collection sent from a client is null.", errorBody(t, w).Message)
	})

	t.Run("invalid element", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/companies/collection", `[{"name":"Acme"},{"address":"x"}]`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_UpdateAndDelete(t *testing.T) {
	id := uuid.New()
	svc := &fakeCompanyService{
		UpdateCompanyFn: func(ctx context.Context, got uuid.UUID, req service.CompanyForUpdateDTO) error {
			assert.Equal(t, id, got)
			assert.Equal(t, "Acme Corp", req.Name)
			return nil
		},
		DeleteCompanyFn: func(ctx context.Context, got uuid.UUID) error {
			if got != id {
				return domainerrors.CompanyNotFound(got)
			}
			return nil
		},
	}
	r := setupRouter(&fakeServices{company: svc})

	w := serve(r, http.MethodPut, "/api/companies/"+id.String(), `{"name":"Acme Corp","address":"2 Side St","country":"CA"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodPut, "/api/companies/"+id.String(), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CompanyForUpdateDto object is null", errorBody(t, w).Message)

	w = serve(r, http.MethodDelete, "/api/companies/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(r, http.MethodDelete, "/api/companies/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
