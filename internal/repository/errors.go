package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row is missing or not visible to the caller.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ownedBy restricts a query to rows of the given user. userID 0 leaves the query unscoped.
func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == 0 {
			return db
		}
		return db.Where("user_id = ?", userID)
	}
}
