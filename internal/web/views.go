package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"focustrack/internal/service"
)

func (s *Server) handleDashboard(c *gin.Context) {
	tasks, err := s.Tasks.ListTasks(c.Request.Context(), currentUser(c), "")
	if err != nil {
		s.internalError(c, err, "list tasks for dashboard")
		return
	}
	c.JSON(http.StatusOK, service.BuildDashboard(tasks))
}

func (s *Server) handleCalendar(c *gin.Context) {
	now := s.opts.Now()
	year, month := calendarMonth(c, now)

	tasks, err := s.Tasks.ListTasks(c.Request.Context(), currentUser(c), "")
	if err != nil {
		s.internalError(c, err, "list tasks for calendar")
		return
	}
	c.JSON(http.StatusOK, service.BuildCalendar(year, month, tasks, now, s.opts.Calendar))
}

// calendarMonth reads ?year=&month=, falling back to now for missing or bad values.
func calendarMonth(c *gin.Context, now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y >= 1 && y <= 9999 {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}
