package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/utils"

	"gorm.io/gorm"
)

type NewFoodLogInput struct {
	Day      string  `json:"day" binding:"required"` // YYYY-MM-DD
	Type     string  `json:"type_of_meal" binding:"required"`
	MealID   uint    `json:"meal" binding:"required"`
	Servings float64 `json:"number_of_servings" binding:"required,gt=0"`
}

type UpdateFoodLogInput struct {
	MealID   uint    `json:"meal"`
	Servings float64 `json:"number_of_servings"`
}

type FoodLogView struct {
	ID       uint    `json:"id"`
	Day      string  `json:"day"`
	Type     string  `json:"type_of_meal"`
	Meal     string  `json:"meal"`
	Servings float64 `json:"number_of_servings"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("day must be YYYY-MM-DD: %w", models.ErrValidation)
	}
	return day, nil
}

func foodLogView(entry *models.MealHistory) FoodLogView {
	return FoodLogView{
		ID:       entry.ID,
		Day:      entry.Day.Format("2006-01-02"),
		Type:     entry.Type,
		Meal:     entry.Meal.Name,
		Servings: entry.Servings,
		Calories: entry.Calories,
		Proteins: entry.Proteins,
		Fat:      entry.Fat,
		Carbs:    entry.Carbs,
	}
}

// AddFoodLog snapshots servings × the meal's per-serving totals onto
// the entry so history reads never re-join the catalog.
func AddFoodLog(clientEmail string, input NewFoodLogInput) (*FoodLogView, error) {
	if !models.ValidMealType(input.Type) {
		return nil, fmt.Errorf("unknown meal type %q: %w", input.Type, models.ErrValidation)
	}
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, err
	}

	client, err := findClient(clientEmail)
	if err != nil {
		return nil, err
	}
	meal, err := GetMeal(input.MealID)
	if err != nil {
		return nil, err
	}

	entry := &models.MealHistory{
		Day:      day,
		Type:     input.Type,
		ClientID: client.ID,
		MealID:   meal.ID,
		Servings: input.Servings,
		Calories: input.Servings * meal.Calories,
		Proteins: input.Servings * meal.Proteins,
		Fat:      input.Servings * meal.Fat,
		Carbs:    input.Servings * meal.Carbs,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	entry.Meal = *meal
	view := foodLogView(entry)
	return &view, nil
}

func GetFoodLog(id uint) (*models.MealHistory, error) {
	var entry models.MealHistory
	if err := config.DB.Preload("Meal").First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food log %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &entry, nil
}

// FoodLogOwner resolves the email of the client owning an entry, for
// the access check.
func FoodLogOwner(entry *models.MealHistory) (string, error) {
	var client models.Client
	if err := config.DB.Preload("User").First(&client, entry.ClientID).Error; err != nil {
		return "", err
	}
	return client.User.Email, nil
}

func ListFoodLogs(clientEmail, dayStr string) ([]FoodLogView, error) {
	day, err := parseDay(dayStr)
	if err != nil {
		return nil, err
	}
	client, err := findClient(clientEmail)
	if err != nil {
		return nil, err
	}

	var entries []models.MealHistory
	if err := config.DB.
		Preload("Meal").
		Where("client_id = ? AND day = ?", client.ID, day).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	views := make([]FoodLogView, 0, len(entries))
	for i := range entries {
		views = append(views, foodLogView(&entries[i]))
	}
	return views, nil
}

// UpdateFoodLog recomputes the denormalized totals whenever servings
// or the referenced meal change.
func UpdateFoodLog(id uint, input UpdateFoodLogInput) (*FoodLogView, error) {
	entry, err := GetFoodLog(id)
	if err != nil {
		return nil, err
	}

	if input.MealID != 0 {
		meal, err := GetMeal(input.MealID)
		if err != nil {
			return nil, err
		}
		entry.MealID = meal.ID
		entry.Meal = *meal
	}
	if input.Servings > 0 {
		entry.Servings = input.Servings
	}

	entry.Calories = entry.Servings * entry.Meal.Calories
	entry.Proteins = entry.Servings * entry.Meal.Proteins
	entry.Fat = entry.Servings * entry.Meal.Fat
	entry.Carbs = entry.Servings * entry.Meal.Carbs

	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	view := foodLogView(entry)
	return &view, nil
}

func DeleteFoodLog(id uint) error {
	result := config.DB.Delete(&models.MealHistory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("food log %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// DayTotals sums one day of entries at full precision.
func DayTotals(entries []models.MealHistory) utils.Totals {
	var totals utils.Totals
	for _, entry := range entries {
		totals.Calories += entry.Calories
		totals.Carbs += entry.Carbs
		totals.Fat += entry.Fat
		totals.Proteins += entry.Proteins
	}
	return totals
}
