package model

import "time"

// User is an account that signs in with email and password.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:320;not null"`
	PasswordHash string `gorm:"size:255;not null"` // bcrypt, never the raw password
	CreatedAt    time.Time
	Tasks        []Task `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
