package middleware

import (
	"company-employees/internal/shared/apperror"
	"company-employees/internal/shared/contextutil"
	"company-employees/internal/shared/response"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler turns the last error pushed with c.Error into the
// {statusCode, message} body. Handlers never write error responses
// themselves.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		httpErr := apperror.ToHTTP(err)

		log := contextutil.GetLogger(c.Request.Context(), logger)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		}
		switch {
		case httpErr.Status >= http.StatusInternalServerError:
			log.Error("something went wrong", fields...)
		case apperror.IsNotFound(err), apperror.IsBadRequest(err):
			// client mistakes the API reports routinely
			log.Info("request rejected", fields...)
		default:
			log.Warn("something went wrong", fields...)
		}

		response.Error(c, httpErr.Status, httpErr.Message)
	}
}

// Recovery converts panics into a 500 with the same body as ErrorHandler.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log := contextutil.GetLogger(c.Request.Context(), logger)
		log.Error("something went wrong",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.Stack("stack"),
		)
		response.Error(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Message)
	})
}
