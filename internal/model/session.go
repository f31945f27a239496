package model

import "time"

// Session maps a cookie token to a signed-in user.
type Session struct {
	Token     string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
	ExpiresAt *time.Time `gorm:"index"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
