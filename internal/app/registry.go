package app

import (
	"company-employees/internal/config"
	"company-employees/internal/handler"
	"company-employees/internal/middleware"
	"company-employees/internal/repository"
	"company-employees/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(cfg.App.CORSAllowedOrigins),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)

	// --- Units of work & services ---
	repos := repository.NewFactory(db)
	services := service.NewManager(repos, logger)

	// --- Handlers ---
	companyHandler := handler.NewCompanyHandler(services, logger)
	employeeHandler := handler.NewEmployeeHandler(services, logger)

	var create []gin.HandlerFunc
	if rdb != nil {
		create = append(create, middleware.Idempotency(rdb, logger))
	}

	handler.RegisterRoutes(router.Group("/api"), companyHandler, employeeHandler, create...)
}
