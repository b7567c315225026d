package models

import (
	"gorm.io/gorm"
)

// Meal is composed from ingredients with per-ingredient gram
// quantities. The nutrient totals for one serving are denormalized
// here and recomputed whenever the ingredient set changes.
type Meal struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Category string

	// Owner. Nil for catalog meals visible to everyone.
	ClientID *uint `gorm:"index"`

	Ingredients []MealIngredient

	Calories float64
	Proteins float64
	Fat      float64
	Carbs    float64
}

// MealIngredient links a meal to an ingredient with the quantity used,
// in grams.
type MealIngredient struct {
	gorm.Model
	MealID       uint `gorm:"index;not null"`
	IngredientID uint `gorm:"not null"`
	Ingredient   Ingredient
	Grams        float64
}
