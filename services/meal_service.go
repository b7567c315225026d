package services

import (
	"errors"
	"fmt"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"

	"gorm.io/gorm"
)

type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Proteins float64 `json:"proteins" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
}

type MealIngredientInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Grams        float64 `json:"grams" binding:"required,gt=0"`
}

type NewMealInput struct {
	Name        string                `json:"name" binding:"required"`
	Category    string                `json:"category" binding:"required"`
	Ingredients []MealIngredientInput `json:"ingredients" binding:"required,min=1,dive"`
}

func CreateIngredient(input IngredientInput) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{
		Name:     input.Name,
		Calories: input.Calories,
		Proteins: input.Proteins,
		Fat:      input.Fat,
		Carbs:    input.Carbs,
	}
	if err := config.DB.Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func GetIngredient(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &ingredient, nil
}

// UpdateIngredient changes the per-100g composition and recomputes the
// denormalized totals of every meal containing it.
func UpdateIngredient(id uint, input IngredientInput) error {
	ingredient, err := GetIngredient(id)
	if err != nil {
		return err
	}

	ingredient.Name = input.Name
	ingredient.Calories = input.Calories
	ingredient.Proteins = input.Proteins
	ingredient.Fat = input.Fat
	ingredient.Carbs = input.Carbs

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ingredient).Error; err != nil {
			return err
		}

		var links []models.MealIngredient
		if err := tx.Where("ingredient_id = ?", id).Find(&links).Error; err != nil {
			return err
		}
		seen := map[uint]bool{}
		for _, link := range links {
			if seen[link.MealID] {
				continue
			}
			seen[link.MealID] = true
			if err := recomputeMealTotals(tx, link.MealID); err != nil {
				return err
			}
		}
		return nil
	})
}

func DeleteIngredient(id uint) error {
	var count int64
	config.DB.Model(&models.MealIngredient{}).Where("ingredient_id = ?", id).Count(&count)
	if count > 0 {
		return fmt.Errorf("ingredient %d is used by %d meals: %w", id, count, models.ErrValidation)
	}

	result := config.DB.Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// MealTotals sums each ingredient's per-100g composition scaled by the
// grams used. Pure; the denormalization contract in one place.
func MealTotals(links []models.MealIngredient) (calories, proteins, fat, carbs float64) {
	for _, link := range links {
		scale := link.Grams / 100.0
		calories += link.Ingredient.Calories * scale
		proteins += link.Ingredient.Proteins * scale
		fat += link.Ingredient.Fat * scale
		carbs += link.Ingredient.Carbs * scale
	}
	return
}

func recomputeMealTotals(tx *gorm.DB, mealID uint) error {
	var links []models.MealIngredient
	if err := tx.Preload("Ingredient").Where("meal_id = ?", mealID).Find(&links).Error; err != nil {
		return err
	}
	calories, proteins, fat, carbs := MealTotals(links)
	return tx.Model(&models.Meal{}).Where("id = ?", mealID).Updates(map[string]interface{}{
		"calories": calories,
		"proteins": proteins,
		"fat":      fat,
		"carbs":    carbs,
	}).Error
}

// CreateMeal stores the composition and its denormalized totals.
// clientID is nil when an admin adds a catalog meal.
func CreateMeal(input NewMealInput, clientID *uint) (*models.Meal, error) {
	var links []models.MealIngredient
	for _, item := range input.Ingredients {
		ingredient, err := GetIngredient(item.IngredientID)
		if err != nil {
			return nil, err
		}
		links = append(links, models.MealIngredient{
			IngredientID: ingredient.ID,
			Ingredient:   *ingredient,
			Grams:        item.Grams,
		})
	}

	calories, proteins, fat, carbs := MealTotals(links)
	meal := &models.Meal{
		Name:     input.Name,
		Category: input.Category,
		ClientID: clientID,
		Calories: calories,
		Proteins: proteins,
		Fat:      fat,
		Carbs:    carbs,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].MealID = meal.ID
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	meal.Ingredients = links
	return meal, nil
}

func GetMeal(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Ingredients.Ingredient").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meal %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &meal, nil
}

// ListMeals returns catalog meals plus the client's own.
func ListMeals(clientID *uint) ([]models.Meal, error) {
	var meals []models.Meal
	q := config.DB.Preload("Ingredients.Ingredient")
	if clientID != nil {
		q = q.Where("client_id IS NULL OR client_id = ?", *clientID)
	} else {
		q = q.Where("client_id IS NULL")
	}
	err := q.Order("name ASC").Find(&meals).Error
	return meals, err
}
