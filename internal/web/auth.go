package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focustrack/internal/service"
)

const sessionCookie = "focustrack_session"

type signupForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Confirm  string `form:"confirm" json:"confirm"`
}

type loginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// requireUser resolves the session cookie and redirects anonymous requests to /login.
func (s *Server) requireUser(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	user, err := s.Auth.Resolve(c.Request.Context(), token)
	if errors.Is(err, service.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	if err != nil {
		s.internalError(c, err, "resolve session")
		c.Abort()
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func (s *Server) handleSignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":       "signup",
		"fields":     []string{"email", "password", "confirm"},
		"csrf_token": c.GetString(csrfKey),
	})
}

func (s *Server) handleSignup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.Auth.Signup(c.Request.Context(), form.Email, form.Password, form.Confirm)
	switch {
	case err == nil:
	case validationFailed(c, err):
		return
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	default:
		s.entry(c).WithError(err).Error("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	s.entry(c).WithField("user_id", user.ID).Info("user signed up")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleLoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":       "login",
		"fields":     []string{"email", "password"},
		"csrf_token": c.GetString(csrfKey),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, user, err := s.Auth.Login(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		s.entry(c).Warn("login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.internalError(c, err, "login failed")
		return
	}

	maxAge := 0
	if s.opts.SessionTTL > 0 {
		maxAge = int(s.opts.SessionTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, session.Token, maxAge, "/", "", s.opts.SecureCookies, true)

	s.entry(c).WithField("user_id", user.ID).Info("login successful")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleLogout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	if err := s.Auth.Logout(c.Request.Context(), token); err != nil {
		s.internalError(c, err, "logout failed")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", s.opts.SecureCookies, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
