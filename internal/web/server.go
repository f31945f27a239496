package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"focustrack/internal/service"
)

// Deps are the services the handlers compose.
type Deps struct {
	Auth       *service.AuthService
	Tasks      *service.TaskService
	Categories *service.CategoryService
	Reminders  *service.ReminderService
	Ping       func(context.Context) error
	Log        *logrus.Entry
}

// Options tune the HTTP boundary.
type Options struct {
	SecureCookies bool
	CSRF          bool
	SessionTTL    time.Duration
	Calendar      service.CalendarOptions
	Now           func() time.Time
}

// Server is the FocusTrack HTTP front end.
type Server struct {
	Deps
	opts   Options
	router *gin.Engine
}

// NewServer wires middleware and routes.
func NewServer(deps Deps, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	router := gin.New()
	s := &Server{Deps: deps, opts: opts, router: router}

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(deps.Log))
	router.Use(metricsMiddleware())
	router.Use(securityHeadersMiddleware())
	if opts.CSRF {
		router.Use(csrfMiddleware(opts.SecureCookies))
	}

	router.GET("/signup", s.handleSignupForm)
	router.POST("/signup", s.handleSignup)
	router.GET("/login", s.handleLoginForm)
	router.POST("/login", s.handleLogin)
	router.GET("/metrics", gin.WrapH(metricsHandler()))
	router.GET("/healthz", s.handleHealth)

	app := router.Group("/", s.requireUser)
	{
		app.GET("/logout", s.handleLogout)
		app.GET("/", s.handleDashboard)
		app.GET("/dashboard", s.handleDashboard)
		app.GET("/calendar", s.handleCalendar)
		app.GET("/categories", s.handleCategories)

		app.GET("/tasks", s.handleListTasks)
		app.POST("/tasks", s.handleCreateTask)
		app.GET("/tasks/:id/edit", s.handleEditForm)
		app.POST("/tasks/:id/edit", s.handleEditTask)
		app.POST("/tasks/:id/done", s.handleMarkDone)
		app.POST("/tasks/:id/move", s.handleMoveTask)
		app.POST("/tasks/:id/delete", s.handleDeleteTask)
		app.GET("/tasks/:id/reminders", s.handleListReminders)
		app.POST("/tasks/:id/reminders", s.handleCreateReminder)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.WithField("addr", addr).Info("http server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Log.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.Ping != nil {
		if err := s.Ping(c.Request.Context()); err != nil {
			s.entry(c).WithError(err).Error("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
