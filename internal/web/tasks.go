package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focustrack/internal/model"
	"focustrack/internal/service"
)

type taskForm struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	DueDate      string `form:"due_date" json:"due_date"`
	Priority     string `form:"priority" json:"priority"`
	Status       string `form:"status" json:"status"`
	CategoryName string `form:"category_name" json:"category_name"`
}

func (f taskForm) input() service.TaskInput {
	return service.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    f.Priority,
		Status:      f.Status,
		Category:    f.CategoryName,
	}
}

type moveRequest struct {
	Status string `form:"status" json:"status"`
}

type reminderForm struct {
	RemindAt string `form:"remind_at" json:"remind_at"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	status := c.Query("status")

	tasks, err := s.Tasks.ListTasks(ctx, currentUser(c), status)
	if err != nil {
		s.internalError(c, err, "list tasks")
		return
	}
	categories, err := s.Categories.List(ctx)
	if err != nil {
		s.internalError(c, err, "list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":      tasks,
		"categories": categories,
		"priorities": model.Priorities,
		"statuses":   model.Statuses,
		"status":     status,
	})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.Tasks.CreateTask(c.Request.Context(), currentUser(c), form.input())
	if err != nil {
		if validationFailed(c, err) {
			return
		}
		s.internalError(c, err, "create task")
		return
	}

	s.entry(c).WithField("task_id", task.ID).Info("task created")
	redirectToTasks(c)
}

func (s *Server) handleEditForm(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		redirectToTasks(c)
		return
	}
	ctx := c.Request.Context()

	task, err := s.Tasks.GetTask(ctx, currentUser(c), id)
	if errors.Is(err, service.ErrNotFound) {
		redirectToTasks(c)
		return
	}
	if err != nil {
		s.internalError(c, err, "get task")
		return
	}
	categories, err := s.Categories.List(ctx)
	if err != nil {
		s.internalError(c, err, "list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":       task,
		"categories": categories,
		"priorities": model.Priorities,
		"statuses":   model.Statuses,
	})
}

func (s *Server) handleEditTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		redirectToTasks(c)
		return
	}
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := s.Tasks.UpdateTask(c.Request.Context(), currentUser(c), id, form.input())
	switch {
	case err == nil:
		s.entry(c).WithField("task_id", id).Info("task updated")
	case validationFailed(c, err):
		return
	case errors.Is(err, service.ErrNotFound):
		s.entry(c).WithField("task_id", id).Warn("task not found for update")
	default:
		s.internalError(c, err, "update task")
		return
	}
	redirectToTasks(c)
}

func (s *Server) handleMarkDone(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		redirectToTasks(c)
		return
	}
	err := s.Tasks.UpdateTaskStatus(c.Request.Context(), currentUser(c), id, model.StatusDone)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		s.internalError(c, err, "mark task done")
		return
	}
	redirectToTasks(c)
}

// handleMoveTask is the JSON endpoint used by the board to change status.
func (s *Server) handleMoveTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var req moveRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := s.Tasks.UpdateTaskStatus(c.Request.Context(), currentUser(c), id, req.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	default:
		s.internalError(c, err, "move task")
	}
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		redirectToTasks(c)
		return
	}
	err := s.Tasks.DeleteTask(c.Request.Context(), currentUser(c), id)
	switch {
	case err == nil:
		s.entry(c).WithField("task_id", id).Info("task deleted")
	case errors.Is(err, service.ErrNotFound):
		s.entry(c).WithField("task_id", id).Warn("task not found for deletion")
	default:
		s.internalError(c, err, "delete task")
		return
	}
	redirectToTasks(c)
}

// ownedTask loads the task named in the path or writes a 404.
func (s *Server) ownedTask(c *gin.Context) (*model.Task, bool) {
	id, ok := taskID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, false
	}
	task, err := s.Tasks.GetTask(c.Request.Context(), currentUser(c), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, false
	}
	if err != nil {
		s.internalError(c, err, "get task")
		return nil, false
	}
	return task, true
}

func (s *Server) handleListReminders(c *gin.Context) {
	task, ok := s.ownedTask(c)
	if !ok {
		return
	}
	reminders, err := s.Reminders.ListForTask(c.Request.Context(), task.ID)
	if err != nil {
		s.internalError(c, err, "list reminders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": task.ID, "reminders": reminders})
}

func (s *Server) handleCreateReminder(c *gin.Context) {
	task, ok := s.ownedTask(c)
	if !ok {
		return
	}
	var form reminderForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reminder, err := s.Reminders.CreateReminder(c.Request.Context(), task.ID, form.RemindAt)
	if err != nil {
		if validationFailed(c, err) {
			return
		}
		s.internalError(c, err, "create reminder")
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

func (s *Server) handleCategories(c *gin.Context) {
	categories, err := s.Categories.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
