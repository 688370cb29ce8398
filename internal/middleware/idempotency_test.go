package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"company-employees/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const createdBody = `{"id":"7"}`

func idempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()

	r := setupRouter()
	r.POST("/api/companies", middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		*calls++
		c.Header("Location", "/api/companies/7")
		c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(createdBody))
	})
	return r, mock
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/companies", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set(middleware.IdempotencyKeyHeader, key)
	return req
}

func TestIdempotency_FirstRequestIsStored(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := middleware.IdempotencyCacheKey("/api/companies", "k1")
	payload, _ := json.Marshal(middleware.IdempotentResponse{
		Status:      http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Location:    "/api/companies/7",
		Body:        createdBody,
	})

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, string(payload), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postWithKey("k1"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := middleware.IdempotencyCacheKey("/api/companies", "k1")
	payload, _ := json.Marshal(middleware.IdempotentResponse{
		Status:   http.StatusCreated,
		Location: "/api/companies/7",
		Body:     createdBody,
	})
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postWithKey("k1"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/companies/7", w.Header().Get("Location"))
	assert.JSONEq(t, createdBody, w.Body.String())
	assert.Equal(t, 0, calls, "handler must not run again")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateIsRejected(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := middleware.IdempotencyCacheKey("/api/companies", "k1")
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postWithKey("k1"))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_WithoutKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/companies", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_KeyIsScopedToRequestPath(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0

	r := setupRouter()
	r.POST("/api/companies/:companyId/employees", middleware.Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		calls++
		c.Header("Location", "/api/companies/"+c.Param("companyId")+"/employees/e1")
		c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(`{"id":"e1"}`))
	})

	companyAKey := middleware.IdempotencyCacheKey("/api/companies/A/employees", "k1")
	companyBKey := middleware.IdempotencyCacheKey("/api/companies/B/employees", "k1")
	require.NotEqual(t, companyAKey, companyBKey)

	payload, _ := json.Marshal(middleware.IdempotentResponse{
		Status:      http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Location:    "/api/companies/B/employees/e1",
		Body:        `{"id":"e1"}`,
	})
	// company A already has a stored response under k1; B must not see it
	mock.ExpectGet(companyBKey).RedisNil()
	mock.ExpectSetNX(companyBKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(companyBKey, string(payload), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(companyBKey + ":lock").SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/api/companies/B/employees", strings.NewReader(`{"name":"Ann"}`))
	req.Header.Set(middleware.IdempotencyKeyHeader, "k1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/companies/B/employees/e1", w.Header().Get("Location"))
	assert.Empty(t, w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplayKeepsContentType(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := middleware.IdempotencyCacheKey("/api/companies", "k2")
	payload, _ := json.Marshal(middleware.IdempotentResponse{
		Status:      http.StatusCreated,
		ContentType: "application/xml; charset=utf-8",
		Location:    "/api/companies/7",
		Body:        "<CompanyDTO><id>7</id></CompanyDTO>",
	})
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postWithKey("k2"))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
