package models

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`
	User   User

	Sex           string  // "male" | "female"
	Height        float64 // cm
	CurrentWeight float64 // kg
	WeightGoal    float64 // kg

	// A client has at most one assigned doctor. Cleared, not cascaded,
	// when the doctor account goes away.
	DoctorID *uint `gorm:"index"`
}
