package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/escola-hub/escola-api/api/swagger"
	"github.com/escola-hub/escola-api/internal/handler"
	"github.com/escola-hub/escola-api/internal/middleware"
	"github.com/escola-hub/escola-api/internal/repository"
	"github.com/escola-hub/escola-api/internal/service"
	"github.com/escola-hub/escola-api/pkg/config"
	"github.com/escola-hub/escola-api/pkg/database"
	"github.com/escola-hub/escola-api/pkg/logger"
	corsmiddleware "github.com/escola-hub/escola-api/pkg/middleware/cors"
	reqidmiddleware "github.com/escola-hub/escola-api/pkg/middleware/requestid"
)

// @title Escola API
// @version 1.0.0
// @description School records service: classes, students and teachers
// @BasePath /
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		logr.Sugar().Fatalw("failed to sync schema", "error", err)
	}
	cancel()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)

	validate := validator.New()
	classSvc := service.NewClassService(classRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, classRepo, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, classRepo, validate, logr)
	metricsSvc := service.NewMetricsService()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r,
		handler.NewClassHandler(classSvc),
		handler.NewStudentHandler(studentSvc),
		handler.NewTeacherHandler(teacherSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
