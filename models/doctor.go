package models

import (
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	User     User
	Hospital string `gorm:"not null"`
}
