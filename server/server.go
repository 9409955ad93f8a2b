// Package server exposes the task store and the day planner over a local
// HTTP API, for use by any external UI or automation.
package server

import (
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/config"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/notify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the local API server
type Server struct {
	db        *db.DB
	scheduler *notify.Scheduler
	cfg       *config.Config
	echo      *echo.Echo
}

// New creates a new server over an open store and a live notification
// scheduler.
func New(database *db.DB, scheduler *notify.Scheduler, cfg *config.Config) *Server {
	s := &Server{
		db:        database,
		scheduler: scheduler,
		cfg:       cfg,
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP Request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// API v1
	api := e.Group("/api/v1")

	// Planning
	api.POST("/plan", s.handlePlan)
	api.POST("/reschedule-overdue", s.handleRescheduleOverdue)

	// Tasks
	api.GET("/tasks", s.handleListTasks)
	api.POST("/tasks", s.handleCreateTask)
	api.GET("/tasks/:id", s.handleGetTask)
	api.PUT("/tasks/:id", s.handleUpdateTask)
	api.DELETE("/tasks/:id", s.handleDeleteTask)

	// Notifications
	api.GET("/tasks/:id/notifications", s.handleListNotifications)
	api.POST("/notifications", s.handleCreateNotification)
	api.PUT("/notifications/:id", s.handleUpdateNotification)
	api.DELETE("/notifications/:id", s.handleDeleteNotification)

	s.echo = e
}

// Start begins listening on the given address
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Close shuts down the underlying echo instance
func (s *Server) Close() error {
	return s.echo.Close()
}
