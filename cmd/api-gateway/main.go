package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/academia-console-api/api/swagger"
	"github.com/noah-isme/academia-console-api/internal/handler"
	"github.com/noah-isme/academia-console-api/internal/middleware"
	"github.com/noah-isme/academia-console-api/internal/models"
	"github.com/noah-isme/academia-console-api/internal/repository"
	"github.com/noah-isme/academia-console-api/internal/service"
	"github.com/noah-isme/academia-console-api/pkg/cache"
	"github.com/noah-isme/academia-console-api/pkg/config"
	"github.com/noah-isme/academia-console-api/pkg/database"
	"github.com/noah-isme/academia-console-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/academia-console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/academia-console-api/pkg/middleware/requestid"
)

// @title Academia Console API
// @version 0.1.0
// @description Report aggregation backend for the academic admin console
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.DefaultTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	reportRepo := repository.NewReportRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	authSvc := service.NewAuthService(cfg.JWT)
	periodSvc := service.NewPeriodService(reportRepo, cacheSvc, cfg.Reports.PeriodsTTL, logr)
	reportSvc := service.NewReportService(reportRepo, periodSvc, cacheSvc, metricsSvc, logr, service.ReportServiceConfig{
		StudentsPageSize: cfg.Reports.StudentsPageSize,
		CoursesPageSize:  cfg.Reports.CoursesPageSize,
		FinancePageSize:  cfg.Reports.FinancePageSize,
		SnapshotTTL:      cfg.Reports.SnapshotTTL,
	})

	var auditSvc *service.AuditService
	if cfg.Audit.Enabled {
		auditSvc = service.NewAuditService(auditRepo, logr, cfg.Audit)
		auditSvc.Start(context.Background())
		defer auditSvc.Stop()
	}

	reportHandler := handler.NewReportHandler(reportSvc, reportRepo)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authSvc))
	api.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleStaff))

	reports := api.Group("/reports")
	{
		reports.POST("/generate", middleware.Audit(auditSvc, models.AuditActionReportGenerate, "reports"), reportHandler.Generate)
		reports.GET("/view", middleware.Audit(auditSvc, models.AuditActionReportView, "reports"), reportHandler.View)
		reports.GET("/periods", reportHandler.Periods)
		reports.GET("/courses", reportHandler.Courses)
	}

	if auditSvc != nil {
		auditHandler := handler.NewAuditHandler(auditSvc)
		api.GET("/audit",
			middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin),
			middleware.Audit(auditSvc, models.AuditActionAuditList, "audit"),
			auditHandler.History)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
