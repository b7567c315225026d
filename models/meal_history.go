package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal type tags accepted on a food log.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealHistory is one logged instance of eating a meal on a given day.
// Nutrient totals are day-scoped snapshots (servings × the meal's
// per-serving values) and are recomputed when servings or the
// referenced meal change. A client may log the same (day, type) more
// than once.
type MealHistory struct {
	gorm.Model
	Day      time.Time `gorm:"index;not null"`
	Type     string    `gorm:"not null"`
	ClientID uint      `gorm:"index;not null"`
	MealID   uint      `gorm:"not null"`
	Meal     Meal
	Servings float64

	Calories float64
	Proteins float64
	Fat      float64
	Carbs    float64
}
