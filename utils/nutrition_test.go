package utils

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/MyLifeUa/rest-api/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	today := date(2026, time.August, 28)

	tests := []struct {
		name      string
		birthDate time.Time
		want      int
	}{
		{"birthday earlier this year", date(2000, time.March, 10), 26},
		{"birthday today", date(2000, time.August, 28), 26},
		{"birthday tomorrow", date(2000, time.August, 29), 25},
		{"birthday later this year", date(2000, time.December, 1), 25},
		{"same month earlier day", date(2000, time.August, 5), 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAge(tt.birthDate, today); got != tt.want {
				t.Errorf("CalculateAge() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyCaloriesGoal(t *testing.T) {
	today := date(2026, time.March, 10)

	// base = 10*80 + 6.25*180 - 5*25 + 5 = 1805; ×1.55 = 2797.75;
	// losing weight, so −500.
	a := Anthropometrics{
		Sex:           "male",
		Height:        180,
		CurrentWeight: 80,
		WeightGoal:    75,
		BirthDate:     date(2001, time.March, 10),
	}

	goal, err := DailyCaloriesGoal(a, today)
	if err != nil {
		t.Fatalf("DailyCaloriesGoal() error = %v", err)
	}
	if math.Abs(goal-2297.75) > 1e-9 {
		t.Errorf("DailyCaloriesGoal() = %f, want 2297.75", goal)
	}
	if math.Round(goal) != 2298 {
		t.Errorf("rounded goal = %f, want 2298", math.Round(goal))
	}
}

func TestDailyCaloriesGoalSexDifference(t *testing.T) {
	today := date(2026, time.March, 10)

	male := Anthropometrics{
		Sex: "male", Height: 170, CurrentWeight: 70, WeightGoal: 72,
		BirthDate: date(1990, time.January, 1),
	}
	female := male
	female.Sex = "female"

	maleGoal, err := DailyCaloriesGoal(male, today)
	if err != nil {
		t.Fatal(err)
	}
	femaleGoal, err := DailyCaloriesGoal(female, today)
	if err != nil {
		t.Fatal(err)
	}

	// The additive term moves from +5 to −161: a fixed 166 kcal base
	// difference before the activity multiplier.
	want := 166 * ActivityFactor
	if diff := maleGoal - femaleGoal; math.Abs(diff-want) > 1e-9 {
		t.Errorf("male−female goal = %f, want %f", diff, want)
	}
}

func TestDailyCaloriesGoalWeightGoalAdjustment(t *testing.T) {
	today := date(2026, time.March, 10)

	gaining := Anthropometrics{
		Sex: "female", Height: 165, CurrentWeight: 60, WeightGoal: 65,
		BirthDate: date(1995, time.June, 15),
	}
	losing := gaining
	losing.WeightGoal = 55

	gainGoal, err := DailyCaloriesGoal(gaining, today)
	if err != nil {
		t.Fatal(err)
	}
	loseGoal, err := DailyCaloriesGoal(losing, today)
	if err != nil {
		t.Fatal(err)
	}

	if diff := gainGoal - loseGoal; math.Abs(diff-1000) > 1e-9 {
		t.Errorf("gain−lose goal = %f, want exactly 1000", diff)
	}
}

func TestDailyCaloriesGoalMissingProfile(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		name string
		a    Anthropometrics
	}{
		{"no height", Anthropometrics{Sex: "male", CurrentWeight: 80, WeightGoal: 75, BirthDate: date(2000, time.January, 1)}},
		{"no weight", Anthropometrics{Sex: "male", Height: 180, WeightGoal: 75, BirthDate: date(2000, time.January, 1)}},
		{"no weight goal", Anthropometrics{Sex: "male", Height: 180, CurrentWeight: 80, BirthDate: date(2000, time.January, 1)}},
		{"no birth date", Anthropometrics{Sex: "male", Height: 180, CurrentWeight: 80, WeightGoal: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DailyCaloriesGoal(tt.a, today); !errors.Is(err, models.ErrMissingProfileData) {
				t.Errorf("error = %v, want ErrMissingProfileData", err)
			}
		})
	}
}

func TestBuildRatioReport(t *testing.T) {
	// 250g carbs = 1000 kcal (50%), 60g fat = 540 kcal (27%),
	// 80g protein = 320 kcal (16%), residual 140 kcal (7%).
	totals := Totals{Calories: 2000, Carbs: 250, Fat: 60, Proteins: 80}
	goals := DailyGoals{Calories: 2298, Carbs: 287.25, Fat: 76.6, Proteins: 114.9}

	report, err := BuildRatioReport(totals, goals)
	if err != nil {
		t.Fatalf("BuildRatioReport() error = %v", err)
	}

	if report.Carbs.Ratio != 50 {
		t.Errorf("carbs ratio = %f, want 50", report.Carbs.Ratio)
	}
	if report.Fat.Ratio != 27 {
		t.Errorf("fat ratio = %f, want 27", report.Fat.Ratio)
	}
	if report.Proteins.Ratio != 16 {
		t.Errorf("proteins ratio = %f, want 16", report.Proteins.Ratio)
	}
	if report.Others.Ratio != 7 {
		t.Errorf("others ratio = %f, want 7", report.Others.Ratio)
	}

	// Displayed goal ratios are the fixed policy percentages.
	if report.Carbs.Goals.Ratio != 50 || report.Fat.Goals.Ratio != 30 || report.Proteins.Goals.Ratio != 20 {
		t.Errorf("goal ratios = %f/%f/%f, want 50/30/20",
			report.Carbs.Goals.Ratio, report.Fat.Goals.Ratio, report.Proteins.Goals.Ratio)
	}
}

func TestBuildRatioReportSumsWithinTolerance(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
	}{
		{"exact", Totals{Calories: 2000, Carbs: 250, Fat: 60, Proteins: 80}},
		{"uneven rounding", Totals{Calories: 300, Carbs: 10, Fat: 10, Proteins: 10}},
		{"tiny day", Totals{Calories: 123, Carbs: 7, Fat: 3, Proteins: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := BuildRatioReport(tt.totals, DailyGoals{Calories: 2000, Carbs: 250, Fat: 67, Proteins: 100})
			if err != nil {
				t.Fatal(err)
			}
			sum := report.Carbs.Ratio + report.Fat.Ratio + report.Proteins.Ratio + report.Others.Ratio
			if sum < 99 || sum > 101 {
				t.Errorf("ratio sum = %f, want 100 ±1", sum)
			}
		})
	}
}

func TestBuildRatioReportEmptyDay(t *testing.T) {
	_, err := BuildRatioReport(Totals{}, DailyGoals{Calories: 2000})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestBuildLeftReport(t *testing.T) {
	totals := Totals{Calories: 1500, Carbs: 100, Fat: 90, Proteins: 50}
	goals := DailyGoals{Calories: 2298, Carbs: 287.25, Fat: 76.6, Proteins: 114.9}

	left := BuildLeftReport(totals, goals)

	if left.Calories != -798 {
		t.Errorf("calories left = %f, want -798", left.Calories)
	}
	if left.Carbs != -187 {
		t.Errorf("carbs left = %f, want -187", left.Carbs)
	}
	// Over budget on fat: positive.
	if left.Fat != 13 {
		t.Errorf("fat left = %f, want 13", left.Fat)
	}
	if left.Proteins != -65 {
		t.Errorf("proteins left = %f, want -65", left.Proteins)
	}
}
