package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/MyLifeUa/rest-api/models"
)

// Fixed macro policy: 50% of calories from carbs, 30% from fat, 20%
// from protein, at the usual energy densities.
const (
	ActivityFactor = 1.55

	CarbsRatio    = 0.5
	FatRatio      = 0.3
	ProteinsRatio = 0.2

	CarbsKcalPerGram    = 4.0
	FatKcalPerGram      = 9.0
	ProteinsKcalPerGram = 4.0
)

// Anthropometrics is the slice of a client profile the goal math needs.
type Anthropometrics struct {
	Sex           string // "male" | "female"
	Height        float64
	CurrentWeight float64
	WeightGoal    float64
	BirthDate     time.Time
}

// Totals is one day of consumed nutrients, grams except calories.
type Totals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Proteins float64 `json:"proteins"`
}

// DailyGoals carries unrounded targets; rounding happens once at
// report assembly.
type DailyGoals struct {
	Calories float64
	Carbs    float64
	Fat      float64
	Proteins float64
}

// CalculateAge truncates to whole years: one less if today's
// (month, day) has not reached the birth date's yet.
func CalculateAge(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DailyCaloriesGoal is the Mifflin-St Jeor estimate with a fixed 1.55
// activity factor, shifted 500 kcal up or down by the direction of the
// weight goal.
func DailyCaloriesGoal(a Anthropometrics, today time.Time) (float64, error) {
	if a.Height <= 0 || a.CurrentWeight <= 0 || a.WeightGoal <= 0 || a.BirthDate.IsZero() {
		return 0, fmt.Errorf("incomplete anthropometric profile: %w", models.ErrMissingProfileData)
	}

	age := CalculateAge(a.BirthDate, today)

	goal := 10*a.CurrentWeight + 6.25*a.Height - 5*float64(age)
	if a.Sex == "male" {
		goal += 5
	} else {
		goal -= 161
	}
	goal *= ActivityFactor

	if a.WeightGoal > a.CurrentWeight {
		goal += 500
	} else {
		goal -= 500
	}

	return goal, nil
}

// ComputeDailyGoals derives the macro gram targets from the calorie
// goal and the fixed macro policy.
func ComputeDailyGoals(a Anthropometrics, today time.Time) (DailyGoals, error) {
	calories, err := DailyCaloriesGoal(a, today)
	if err != nil {
		return DailyGoals{}, err
	}
	return DailyGoals{
		Calories: calories,
		Carbs:    CarbsRatio * calories / CarbsKcalPerGram,
		Fat:      FatRatio * calories / FatKcalPerGram,
		Proteins: ProteinsRatio * calories / ProteinsKcalPerGram,
	}, nil
}

type MacroGoal struct {
	Total float64 `json:"total"`
	Ratio float64 `json:"ratio"`
}

type MacroInfo struct {
	Total float64   `json:"total"`
	Ratio float64   `json:"ratio"`
	Goals MacroGoal `json:"goals"`
}

type CaloriesInfo struct {
	Total float64 `json:"total"`
	Goal  float64 `json:"goal"`
}

type OthersInfo struct {
	Ratio float64 `json:"ratio"`
}

// RatioReport is the consumed-versus-goal breakdown for one day.
// Consumed ratios derive from energy density; goal ratios are the
// fixed policy percentages.
type RatioReport struct {
	Calories CaloriesInfo `json:"calories"`
	Carbs    MacroInfo    `json:"carbs"`
	Fat      MacroInfo    `json:"fat"`
	Proteins MacroInfo    `json:"proteins"`
	Others   OthersInfo   `json:"others"`
}

// BuildRatioReport requires a non-empty day: callers must treat zero
// consumed calories as the "no history yet" condition instead.
func BuildRatioReport(totals Totals, goals DailyGoals) (*RatioReport, error) {
	if totals.Calories == 0 {
		return nil, fmt.Errorf("no calories consumed: %w", models.ErrValidation)
	}

	carbsKcal := CarbsKcalPerGram * totals.Carbs
	fatKcal := FatKcalPerGram * totals.Fat
	proteinsKcal := ProteinsKcalPerGram * totals.Proteins
	// The leftover share comes from the raw calorie residual, not from
	// 100 minus the already-rounded macro shares.
	othersKcal := totals.Calories - (carbsKcal + fatKcal + proteinsKcal)

	return &RatioReport{
		Calories: CaloriesInfo{
			Total: math.Round(totals.Calories),
			Goal:  math.Round(goals.Calories),
		},
		Carbs: MacroInfo{
			Total: math.Round(totals.Carbs),
			Ratio: math.Round(carbsKcal / totals.Calories * 100),
			Goals: MacroGoal{Total: math.Round(goals.Carbs), Ratio: CarbsRatio * 100},
		},
		Fat: MacroInfo{
			Total: math.Round(totals.Fat),
			Ratio: math.Round(fatKcal / totals.Calories * 100),
			Goals: MacroGoal{Total: math.Round(goals.Fat), Ratio: FatRatio * 100},
		},
		Proteins: MacroInfo{
			Total: math.Round(totals.Proteins),
			Ratio: math.Round(proteinsKcal / totals.Calories * 100),
			Goals: MacroGoal{Total: math.Round(goals.Proteins), Ratio: ProteinsRatio * 100},
		},
		Others: OthersInfo{
			Ratio: math.Round(othersKcal / totals.Calories * 100),
		},
	}, nil
}

// LeftReport is consumed minus goal: negative means under budget.
type LeftReport struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Proteins float64 `json:"proteins"`
}

func BuildLeftReport(totals Totals, goals DailyGoals) LeftReport {
	return LeftReport{
		Calories: math.Round(totals.Calories - goals.Calories),
		Carbs:    math.Round(totals.Carbs - goals.Carbs),
		Fat:      math.Round(totals.Fat - goals.Fat),
		Proteins: math.Round(totals.Proteins - goals.Proteins),
	}
}
