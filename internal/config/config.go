package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// EnvPrefix marks environment variables read as configuration.
// Nested keys use a double underscore: FOCUSTRACK_DB__DSN sets db.dsn.
const EnvPrefix = "FOCUSTRACK_"

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "focustrack.yaml"

// Config keeps runtime settings for the web app.
type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	DB        DBConfig        `koanf:"db"`
	Log       LogConfig       `koanf:"log"`
	Session   SessionConfig   `koanf:"session"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Calendar  CalendarConfig  `koanf:"calendar"`
}

type HTTPConfig struct {
	Addr          string `koanf:"addr"`
	SecureCookies bool   `koanf:"secure_cookies"`
	CSRF          bool   `koanf:"csrf"`
}

type DBConfig struct {
	Driver string `koanf:"driver"` // sqlite or postgres
	DSN    string `koanf:"dsn"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type SessionConfig struct {
	RawTTL string        `koanf:"ttl"`
	TTL    time.Duration `koanf:"-"`
}

type SchedulerConfig struct {
	RawPruneInterval string        `koanf:"prune_interval"`
	PruneInterval    time.Duration `koanf:"-"`
	MaintenanceAt    string        `koanf:"maintenance_at"`
}

type CalendarConfig struct {
	WeekStart   string `koanf:"week_start"` // monday or sunday
	SixWeekGrid bool   `koanf:"six_week_grid"`
}

// Load merges defaults, an optional YAML file and FOCUSTRACK_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(DefaultConfig(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultFile
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", configPath, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %q: %w", configPath, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Validate checks values and fills the parsed durations.
func (c *Config) Validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown db driver %q (supported: %s, %s)", c.DB.Driver, DriverSQLite, DriverPostgres)
	}
	c.DB.DSN = strings.TrimSpace(c.DB.DSN)
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn is required")
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("http.addr is required")
	}

	c.Calendar.WeekStart = strings.ToLower(strings.TrimSpace(c.Calendar.WeekStart))
	if _, err := c.Calendar.FirstWeekday(); err != nil {
		return err
	}

	var err error
	if c.Session.TTL, err = parseDuration("session.ttl", c.Session.RawTTL); err != nil {
		return err
	}
	if c.Scheduler.PruneInterval, err = parseDuration("scheduler.prune_interval", c.Scheduler.RawPruneInterval); err != nil {
		return err
	}
	c.Scheduler.MaintenanceAt = strings.TrimSpace(c.Scheduler.MaintenanceAt)
	return nil
}

// FirstWeekday maps week_start to a time.Weekday.
func (c CalendarConfig) FirstWeekday() (time.Weekday, error) {
	switch c.WeekStart {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("calendar.week_start must be monday or sunday, got %q", c.WeekStart)
	}
}

// parseDuration accepts Go duration strings; empty and "0" mean disabled.
func parseDuration(key, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return d, nil
}
