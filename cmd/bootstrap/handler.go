package bootstrap

import (
	"fmt"
	"net/http"

	"foodstall-backend/config"
	deliveryHttp "foodstall-backend/internal/delivery/http"
	"foodstall-backend/internal/delivery/http/handler"
	"foodstall-backend/internal/delivery/http/middleware"
	"foodstall-backend/internal/observability"
	"foodstall-backend/internal/repository"
	"foodstall-backend/internal/service"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/jwt"
	"foodstall-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewHandler wires repositories, usecases, handlers and middleware into the HTTP API.
func NewHandler(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (http.Handler, error) {
	jwtService := jwt.NewJWTService(cfg.JWT, cfg.Session.TTL)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	categoryRepo := repository.NewFoodCategoryRepository(db)
	menuRepo := repository.NewFoodMenuRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)
	imageStorage, err := repository.NewLocalImageStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload storage: %w", err)
	}

	audit := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, roleRepo, sessionRepo, jwtService, audit, cfg.Auth.DefaultRole)
	authorizationUsecase := usecase.NewAuthorizationUsecase(log, userRepo, roleRepo)
	foodUsecase := usecase.NewFoodUsecase(log, foodRepo, categoryRepo, audit)
	categoryUsecase := usecase.NewFoodCategoryUsecase(log, categoryRepo, audit)
	menuUsecase := usecase.NewFoodMenuUsecase(log, menuRepo, audit)
	employeeUsecase := usecase.NewEmployeeUsecase(log, employeeRepo, roleRepo, audit)
	invoiceUsecase := usecase.NewInvoiceUsecase(log, invoiceRepo, foodRepo, audit)
	roleUsecase := usecase.NewRoleUsecase(log, roleRepo, audit)
	userUsecase := usecase.NewUserUsecase(log, userRepo, roleRepo, sessionRepo, audit)
	uploadUsecase := usecase.NewUploadUsecase(log, imageStorage, cfg.Upload.MaxBytes)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	handlers := deliveryHttp.Handlers{
		Auth: handler.NewAuthHandler(authUsecase, customValidator, handler.CookieOptions{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.TTL,
			Secure: cfg.IsProduction(),
		}, cfg.Auth.AllowDevRegister),
		Food:     handler.NewFoodHandler(foodUsecase, customValidator),
		Category: handler.NewFoodCategoryHandler(categoryUsecase, customValidator),
		Menu:     handler.NewFoodMenuHandler(menuUsecase, customValidator),
		Employee: handler.NewEmployeeHandler(employeeUsecase, customValidator),
		Invoice:  handler.NewInvoiceHandler(invoiceUsecase, customValidator),
		Role:     handler.NewRoleHandler(roleUsecase, customValidator),
		User:     handler.NewUserHandler(userUsecase, customValidator),
		Upload:   handler.NewUploadHandler(uploadUsecase, cfg.Upload.MaxBytes),
		AuditLog: handler.NewAuditLogHandler(auditLogUsecase),
	}

	middlewares := deliveryHttp.Middlewares{
		Auth:          middleware.NewAuthMiddleware(authUsecase, cfg.Session.CookieName),
		Permission:    middleware.NewPermissionMiddleware(authorizationUsecase),
		CORS:          middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins),
		Security:      middleware.NewSecurityMiddleware(log, cfg.IsProduction()),
		Logging:       middleware.NewLoggingMiddleware(log),
		AuthRateLimit: middleware.NewRateLimit(cfg.Auth.LoginRatePerMinute),
	}

	router := deliveryHttp.NewRouter(handlers, middlewares, observability.NewMetrics(), deliveryHttp.StaticFiles{
		Dir:        cfg.Upload.Dir,
		PublicPath: cfg.Upload.PublicPath,
	})

	return router.Setup(), nil
}
