package middleware

import (
	"bytes"
	"company-employees/internal/shared/apperror"
	"company-employees/internal/shared/contextutil"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"

	idempotencyLockTTL     = 30 * time.Second
	idempotencyResponseTTL = 24 * time.Hour
)

// IdempotentResponse is what gets replayed for a repeated Idempotency-Key.
type IdempotentResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType,omitempty"`
	Location    string `json:"location,omitempty"`
	Body        string `json:"body"`
}

// IdempotencyCacheKey scopes a client key to the concrete request path, so
// the same key sent to another company's collection is a new request.
func IdempotencyCacheKey(path, key string) string {
	return fmt.Sprintf("idemp:%s:%s", path, key)
}

// bodyCapture keeps a copy of what the handler writes.
type bodyCapture struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a successful POST that carried
// the same Idempotency-Key. A second request arriving while the first is
// still running gets 409. Redis failures let the request through.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, logger)
		cacheKey := IdempotencyCacheKey(c.Request.URL.Path, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached IdempotentResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				if cached.Location != "" {
					c.Header("Location", cached.Location)
				}
				contentType := cached.ContentType
				if contentType == "" {
					contentType = gin.MIMEJSON + "; charset=utf-8"
				}
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, contentType, []byte(cached.Body))
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Error("idempotency lookup failed", zap.String("key", cacheKey), zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Error("idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			_ = c.Error(apperror.New(
				apperror.CodeConflict,
				"A request with this Idempotency-Key is already being processed",
				http.StatusConflict,
			))
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		// cleanup must run even if the client went away
		cleanupCtx := context.WithoutCancel(ctx)
		if status := capture.Status(); capture.Written() && len(c.Errors) == 0 && status >= 200 && status < 300 {
			payload, _ := json.Marshal(IdempotentResponse{
				Status:      status,
				ContentType: capture.Header().Get("Content-Type"),
				Location:    capture.Header().Get("Location"),
				Body:        capture.body.String(),
			})
			if err := rdb.Set(cleanupCtx, cacheKey, string(payload), idempotencyResponseTTL).Err(); err != nil {
				log.Error("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(cleanupCtx, lockKey).Err(); err != nil {
			log.Error("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
