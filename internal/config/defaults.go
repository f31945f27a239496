package config

// DefaultConfig returns the baseline values every other source overrides.
func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"http": map[string]interface{}{
			"addr":           ":8080",
			"secure_cookies": false,
			"csrf":           true,
		},
		"db": map[string]interface{}{
			"driver": DriverSQLite,
			"dsn":    "focus_track.db",
		},
		"log": map[string]interface{}{
			"level": "info",
		},
		"session": map[string]interface{}{
			"ttl": "0", // never expires
		},
		"scheduler": map[string]interface{}{
			"prune_interval": "1h",
			"maintenance_at": "03:30", // HH:MM, empty disables
		},
		"calendar": map[string]interface{}{
			"week_start":    "monday",
			"six_week_grid": false,
		},
	}
}
