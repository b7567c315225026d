package models

import (
	"gorm.io/gorm"
)

// Ingredient holds the nutrient composition per 100 grams.
type Ingredient struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Calories float64
	Proteins float64
	Fat      float64
	Carbs    float64
}
