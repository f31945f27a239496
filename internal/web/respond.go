package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"focustrack/internal/logger"
	"focustrack/internal/model"
	"focustrack/internal/service"
)

const userKey = "user"

func (s *Server) entry(c *gin.Context) *logrus.Entry {
	return logger.WithRequestID(s.Log, c.GetString(requestIDKey)).WithField("component", "http_handler")
}

func currentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// validationFailed writes a 400 for *service.ValidationError and reports whether it did.
func validationFailed(c *gin.Context, err error) bool {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	return true
}

func (s *Server) internalError(c *gin.Context, err error, msg string) {
	s.entry(c).WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func redirectToTasks(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/tasks")
}
