package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-exam-schedule/internal/logging"
	"github.com/rhyrak/go-exam-schedule/internal/scheduler"
	"github.com/rhyrak/go-exam-schedule/internal/store"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := scheduler.LoadConfiguration(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var repo store.Repository
	switch cfg.Storage {
	case "mysql":
		db, err := store.OpenMySQL(context.Background(), cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			logger.Fatal("connecting to mysql", zap.Error(err))
		}
		defer db.Close()
		repo = db
	default:
		repo = store.NewMemory()
	}

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := newRouter(&server{repo: repo, cfg: cfg, logger: logger})

	logger.Info("listening", zap.String("addr", cfg.ServerAddr), zap.String("storage", cfg.Storage))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newRouter(s *server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/schedule", s.handleGetSchedule)
	r.GET("/schedule/:id", s.handleGetScheduleWithId)
	r.GET("/schedule/:id/xlsx", s.handleGetScheduleExcel)
	r.DELETE("/schedule/:id", s.handleDeleteScheduleWithId)
	r.POST("/schedule", s.handlePostSchedule)
	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
