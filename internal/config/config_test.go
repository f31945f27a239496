package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || !cfg.HTTP.CSRF {
		t.Fatalf("unexpected http config: %#v", cfg.HTTP)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.DSN != "focus_track.db" {
		t.Fatalf("unexpected db config: %#v", cfg.DB)
	}
	if cfg.Session.TTL != 0 {
		t.Fatalf("sessions should not expire by default, got %v", cfg.Session.TTL)
	}
	if cfg.Scheduler.PruneInterval != time.Hour || cfg.Scheduler.MaintenanceAt != "03:30" {
		t.Fatalf("unexpected scheduler config: %#v", cfg.Scheduler)
	}
	if wd, _ := cfg.Calendar.FirstWeekday(); wd != time.Monday {
		t.Fatalf("expected monday week start, got %v", wd)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "http:\n  addr: \":9090\"\nsession:\n  ttl: 2h\ncalendar:\n  week_start: sunday\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FOCUSTRACK_HTTP__ADDR", ":7070")
	t.Setenv("FOCUSTRACK_DB__DSN", filepath.Join(dir, "x.db"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env should override file, got %q", cfg.HTTP.Addr)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %v", cfg.Session.TTL)
	}
	if cfg.DB.DSN != filepath.Join(dir, "x.db") {
		t.Fatalf("unexpected dsn %q", cfg.DB.DSN)
	}
	if wd, _ := cfg.Calendar.FirstWeekday(); wd != time.Sunday {
		t.Fatalf("expected sunday, got %v", wd)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.DB.Driver = "mysql" }},
		{"dsn", func(c *Config) { c.DB.DSN = "  " }},
		{"addr", func(c *Config) { c.HTTP.Addr = "" }},
		{"ttl", func(c *Config) { c.Session.RawTTL = "soon" }},
		{"week start", func(c *Config) { c.Calendar.WeekStart = "friday" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				HTTP:     HTTPConfig{Addr: ":8080"},
				DB:       DBConfig{Driver: DriverSQLite, DSN: "a.db"},
				Calendar: CalendarConfig{WeekStart: "monday"},
			}
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
