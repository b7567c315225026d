package services

import (
	"math"
	"testing"

	"github.com/MyLifeUa/rest-api/models"
)

func TestMealTotals(t *testing.T) {
	rice := models.Ingredient{Name: "rice", Calories: 130, Proteins: 2.7, Fat: 0.3, Carbs: 28}
	chicken := models.Ingredient{Name: "chicken breast", Calories: 165, Proteins: 31, Fat: 3.6, Carbs: 0}

	links := []models.MealIngredient{
		{Ingredient: rice, Grams: 200},
		{Ingredient: chicken, Grams: 150},
	}

	calories, proteins, fat, carbs := MealTotals(links)

	// 200g rice = 2× the per-100g values, 150g chicken = 1.5×.
	wantCalories := 130*2.0 + 165*1.5
	wantProteins := 2.7*2.0 + 31*1.5
	wantFat := 0.3*2.0 + 3.6*1.5
	wantCarbs := 28 * 2.0

	if math.Abs(calories-wantCalories) > 1e-9 {
		t.Errorf("calories = %f, want %f", calories, wantCalories)
	}
	if math.Abs(proteins-wantProteins) > 1e-9 {
		t.Errorf("proteins = %f, want %f", proteins, wantProteins)
	}
	if math.Abs(fat-wantFat) > 1e-9 {
		t.Errorf("fat = %f, want %f", fat, wantFat)
	}
	if math.Abs(carbs-wantCarbs) > 1e-9 {
		t.Errorf("carbs = %f, want %f", carbs, wantCarbs)
	}
}

func TestMealTotalsEmpty(t *testing.T) {
	calories, proteins, fat, carbs := MealTotals(nil)
	if calories != 0 || proteins != 0 || fat != 0 || carbs != 0 {
		t.Errorf("empty composition = %f/%f/%f/%f, want all zero", calories, proteins, fat, carbs)
	}
}

func TestDayTotals(t *testing.T) {
	entries := []models.MealHistory{
		{Calories: 450, Carbs: 60, Fat: 12, Proteins: 25},
		{Calories: 700, Carbs: 80, Fat: 30, Proteins: 40},
		{Calories: 150, Carbs: 20, Fat: 5, Proteins: 3},
	}

	totals := DayTotals(entries)

	if totals.Calories != 1300 {
		t.Errorf("calories = %f, want 1300", totals.Calories)
	}
	if totals.Carbs != 160 {
		t.Errorf("carbs = %f, want 160", totals.Carbs)
	}
	if totals.Fat != 47 {
		t.Errorf("fat = %f, want 47", totals.Fat)
	}
	if totals.Proteins != 68 {
		t.Errorf("proteins = %f, want 68", totals.Proteins)
	}
}

func TestDayTotalsEmpty(t *testing.T) {
	totals := DayTotals(nil)
	if totals.Calories != 0 || totals.Carbs != 0 || totals.Fat != 0 || totals.Proteins != 0 {
		t.Errorf("empty day totals = %+v, want all zero", totals)
	}
}
