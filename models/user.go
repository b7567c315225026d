package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the base identity row shared by every role. Role-specific
// data lives in the Client/Doctor/Admin rows pointing back at it.
type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	FirstName   string
	LastName    string
	PhoneNumber string
	Photo       string
	BirthDate   time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
