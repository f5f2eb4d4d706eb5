package app

import (
	"database/sql"

	"barangay-portal/internal/analytics"
	"barangay-portal/internal/auth"
	"barangay-portal/internal/bootstrap"
	"barangay-portal/internal/company"
	"barangay-portal/internal/documentrequest"
	"barangay-portal/internal/job"
	"barangay-portal/internal/meeting"
	"barangay-portal/internal/messaging/kafka"
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/rbac"
	"barangay-portal/internal/rbac/infra"
	"barangay-portal/internal/resident"
	"barangay-portal/internal/shared/config"
	"barangay-portal/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	documentRepo := documentrequest.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	residentRepo := resident.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.PolicyRules())
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	dispatcher := notification.NewDispatcher(db, notificationRepo, outboxRepo, logger)
	analyticsCache := analytics.NewCache(rdb, cfg.AnalyticsCacheTTL, logger)

	authService := auth.NewServiceWithCache(userRepo, analyticsCache, logger)
	userService := user.NewServiceWithCache(userRepo, analyticsCache, logger)
	companyService := company.NewService(companyRepo, logger)
	documentService := documentrequest.NewService(db, documentRepo, documentrequest.Dependencies{
		Dispatcher: dispatcher,
		Cache:      analyticsCache,
		Audit:      audit,
	}, logger)
	jobService := job.NewService(db, jobRepo, companyService, dispatcher, analyticsCache, logger)
	meetingService := meeting.NewService(db, meetingRepo, dispatcher, audit, logger)
	residentService := resident.NewService(residentRepo, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	analyticsService := analytics.NewService(analyticsRepo, analyticsCache, cfg.Location, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	documentHandler := documentrequest.NewHandler(documentService, logger)
	jobHandler := job.NewHandler(jobService, logger)
	meetingHandler := meeting.NewHandler(meetingService, logger)
	residentHandler := resident.NewHandler(residentService, logger)
	notificationHandler := notification.NewHandler(notificationService)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	authMW := middleware.AuthMiddleware([]byte(cfg.JWTSecret), authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW)
		company.RegisterRoutes(api, companyHandler, rbacService, authMW)
		documentrequest.RegisterRoutes(api, documentHandler, rbacService, authMW, rdb)
		job.RegisterRoutes(api, jobHandler, rbacService, authMW, rdb)
		meeting.RegisterRoutes(api, meetingHandler, rbacService, authMW)
		resident.RegisterRoutes(api, residentHandler, rbacService, authMW)
		notification.RegisterRoutes(api, notificationHandler, rbacService, authMW)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService, authMW)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMW)
	}

	return nil
}
