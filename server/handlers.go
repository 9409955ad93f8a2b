package server

import (
	"net/http"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/planner"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handlePlan runs the day planner. The request body may carry a working
// hours override; otherwise the configured hours apply.
func (s *Server) handlePlan(c echo.Context) error {
	hours := planner.WorkingHours{
		StartTime:     s.cfg.WorkStart,
		EndTime:       s.cfg.WorkEnd,
		BufferMinutes: s.cfg.BufferMinutes,
	}

	var override planner.WorkingHours
	if err := c.Bind(&override); err == nil && override.StartTime != "" && override.EndTime != "" {
		hours = override
	}

	result := planner.New(s.db).PlanMyDay(c.Request().Context(), hours)
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleRescheduleOverdue(c echo.Context) error {
	ok := planner.New(s.db).RescheduleOverdueToToday(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]bool{"success": ok})
}

type taskRequest struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`     // "YYYY-MM-DD" or RFC3339
	PlannedTime string `json:"planned_time"` // RFC3339
	Duration    *int   `json:"duration"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

func (r *taskRequest) apply(t *model.Task) error {
	if r.ProjectID != "" {
		t.ProjectID = r.ProjectID
	}
	if r.Name != "" {
		t.Name = r.Name
	}
	t.Description = r.Description

	if r.DueDate != "" {
		due, err := timeutil.NormalizeDate(r.DueDate)
		if err != nil {
			return err
		}
		day := timeutil.StartOfDay(due)
		t.DueDate = &day
	} else {
		t.DueDate = nil
	}

	if r.PlannedTime != "" {
		at, err := timeutil.NormalizeDate(r.PlannedTime)
		if err != nil {
			return err
		}
		t.PlannedTime = &at
	} else {
		t.PlannedTime = nil
	}

	t.Duration = r.Duration

	if p := model.Priority(r.Priority); p.Valid() {
		t.Priority = p
	}
	if st := model.Status(r.Status); st.Valid() {
		t.Status = st
	}
	return nil
}

func (s *Server) handleListTasks(c echo.Context) error {
	includeDone := c.QueryParam("done") == "true"
	tasks, err := s.db.ListTasks(c.Request().Context(), c.QueryParam("project"), includeDone)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task name is required")
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = "inbox"
	}

	task := model.NewTask(uuid.New().String(), projectID, req.Name)
	if err := req.apply(&task); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.db.CreateTask(c.Request().Context(), task); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleGetTask(c echo.Context) error {
	task, err := s.db.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	ctx := c.Request().Context()
	task, err := s.db.GetTask(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.apply(&task); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.db.UpdateTask(ctx, task); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	// Cancel timers for the task's reminders before the cascade delete.
	if notifications, err := s.db.GetNotificationsByTask(ctx, id); err == nil {
		for _, n := range notifications {
			s.scheduler.Cancel(n.ID)
		}
	}

	if err := s.db.DeleteTask(ctx, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type notificationRequest struct {
	TaskID  string `json:"task_id"`
	Time    string `json:"time"` // RFC3339
	Message string `json:"message"`
}

func (s *Server) handleListNotifications(c echo.Context) error {
	notifications, err := s.db.GetNotificationsByTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

func (s *Server) handleCreateNotification(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "time must be RFC3339")
	}

	ctx := c.Request().Context()
	if _, err := s.db.GetTask(ctx, req.TaskID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}

	notification := model.NewNotification(uuid.New().String(), req.TaskID, at)
	notification.Message = req.Message

	if err := s.db.CreateNotification(ctx, notification); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	s.scheduler.Schedule(notification)
	return c.JSON(http.StatusCreated, notification)
}

func (s *Server) handleUpdateNotification(c echo.Context) error {
	ctx := c.Request().Context()
	notification, err := s.db.GetNotification(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}

	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Time != "" {
		at, err := time.Parse(time.RFC3339, req.Time)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "time must be RFC3339")
		}
		notification.Time = at
	}
	notification.Message = req.Message

	if err := s.db.UpdateNotification(ctx, notification); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Cancel-then-reschedule keeps at most one armed timer per ID.
	s.scheduler.Schedule(notification)
	return c.JSON(http.StatusOK, notification)
}

func (s *Server) handleDeleteNotification(c echo.Context) error {
	if err := s.db.DeleteNotification(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	s.scheduler.Cancel(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
