package models

import (
	"gorm.io/gorm"
)

// Admin manages the doctors of exactly one hospital.
type Admin struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	User     User
	Hospital string `gorm:"not null"`
}
