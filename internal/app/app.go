package app

import (
	"net/http"

	"barangay-portal/internal/bootstrap"
	"barangay-portal/internal/company"
	"barangay-portal/internal/documentrequest"
	"barangay-portal/internal/job"
	"barangay-portal/internal/meeting"
	"barangay-portal/internal/messaging/kafka"
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/resident"
	"barangay-portal/internal/shared/config"
	"barangay-portal/internal/shared/connection"
	"barangay-portal/internal/shared/metrics"
	"barangay-portal/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// entities lists every table the api owns, in foreign-key order.
var entities = []any{
	&user.User{},
	&company.HrCompany{},
	&documentrequest.DocumentRequest{},
	&job.JobListing{},
	&job.JobApplication{},
	&meeting.BarangayMeeting{},
	&meeting.MeetingAttendee{},
	&resident.Skill{},
	&resident.EmploymentRecord{},
	&notification.Notification{},
	&kafka.OutboxRecord{},
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(entities...)
}

func BuildApp(router *gin.Engine, cfg *config.Config, audit bootstrap.AuditLogger) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		metrics.Middleware(),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 3. Register Modules & Routes
	return registerModules(router, cfg, sqlDB, gormDB, redisClient, audit, zap.L())
}
