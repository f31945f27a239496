package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"focustrack/internal/logger"
	"focustrack/internal/model"
	"focustrack/internal/repository"
	"focustrack/internal/service"
	"focustrack/internal/testutil"
)

var testNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type testApp struct {
	db     *gorm.DB
	server *Server
}

func newTestApp(t *testing.T, csrf bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenDB(t)
	categories := service.NewCategoryService(repository.NewCategoryRepository(db))
	server := NewServer(Deps{
		Auth: service.NewAuthService(repository.NewUserRepository(db), repository.NewSessionRepository(db), 0).
			WithHashCost(bcrypt.MinCost),
		Tasks:      service.NewTaskService(repository.NewTaskRepository(db), categories),
		Categories: categories,
		Reminders:  service.NewReminderService(repository.NewReminderRepository(db)),
		Ping:       func(ctx context.Context) error { return repository.Ping(ctx, db) },
		Log:        logger.Discard(),
	}, Options{
		CSRF:     csrf,
		Calendar: service.CalendarOptions{FirstWeekday: time.Monday},
		Now:      func() time.Time { return testNow },
	})
	return &testApp{db: db, server: server}
}

// client keeps cookies between requests like a browser would.
type client struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) client(t *testing.T) *client {
	return &client{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.app.server.Handler().ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		c.t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) signupAndLogin(email, password string) {
	c.t.Helper()
	rec := c.postForm("/signup", url.Values{"email": {email}, "password": {password}, "confirm": {password}})
	expectRedirect(c.t, rec, "/login")
	rec = c.postForm("/login", url.Values{"email": {email}, "password": {password}})
	expectRedirect(c.t, rec, "/dashboard")
}

func (c *client) createTask(title, due, priority, status, category string) {
	c.t.Helper()
	rec := c.postForm("/tasks", url.Values{
		"title": {title}, "due_date": {due}, "priority": {priority},
		"status": {status}, "category_name": {category},
	})
	expectRedirect(c.t, rec, "/tasks")
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 to %s, got %d: %s", location, rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

type taskList struct {
	Tasks      []model.Task     `json:"tasks"`
	Categories []model.Category `json:"categories"`
	Priorities []string         `json:"priorities"`
	Statuses   []string         `json:"statuses"`
}

func (c *client) listTasks(query string) taskList {
	c.t.Helper()
	rec := c.get("/tasks" + query)
	if rec.Code != http.StatusOK {
		c.t.Fatalf("list tasks: %d %s", rec.Code, rec.Body.String())
	}
	var out taskList
	decode(c.t, rec, &out)
	return out
}
