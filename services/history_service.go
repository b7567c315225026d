package services

import (
	"fmt"
	"math"
	"time"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/utils"
)

var periodDays = map[string]int{
	"week":     7,
	"month":    30,
	"3-months": 90,
}

// SeriesPoint is one day of the charting series.
type SeriesPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// HistoryReport is a gap-free daily series for one metric plus the
// goal line for that metric.
type HistoryReport struct {
	Metric string        `json:"metric"`
	Period string        `json:"period"`
	Goal   float64       `json:"goal"`
	Series []SeriesPoint `json:"series"`
}

// ValidateHistoryParams rejects unknown metric/period values before
// any query executes.
func ValidateHistoryParams(metric, period string) (int, error) {
	switch metric {
	case "calories", "fat", "carbs", "proteins":
	default:
		return 0, fmt.Errorf("unknown metric %q: %w", metric, models.ErrInvalidParameter)
	}

	numDays, ok := periodDays[period]
	if !ok {
		return 0, fmt.Errorf("unknown period %q: %w", period, models.ErrInvalidParameter)
	}
	return numDays, nil
}

func metricValue(entry *models.MealHistory, metric string) float64 {
	switch metric {
	case "calories":
		return entry.Calories
	case "fat":
		return entry.Fat
	case "carbs":
		return entry.Carbs
	case "proteins":
		return entry.Proteins
	}
	return 0
}

// BuildDailySeries lays out one zero-valued slot per calendar day from
// end−numDays+1 through end, then overwrites slots that have a summed
// value. Days absent from sums stay at zero, so the series is gap-free
// and chronological with no duplicate days.
func BuildDailySeries(numDays int, end time.Time, sums map[string]float64) []SeriesPoint {
	series := make([]SeriesPoint, 0, numDays)
	for i := numDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format("2006-01-02")
		point := SeriesPoint{Day: day}
		if value, ok := sums[day]; ok {
			point.Value = math.Round(value)
		}
		series = append(series, point)
	}
	return series
}

func metricGoal(goals utils.DailyGoals, metric string) float64 {
	switch metric {
	case "calories":
		return math.Round(goals.Calories)
	case "fat":
		return math.Round(goals.Fat)
	case "carbs":
		return math.Round(goals.Carbs)
	case "proteins":
		return math.Round(goals.Proteins)
	}
	return 0
}

// GetNutrientHistory aggregates the trailing window for one metric.
// A client with zero history gets the all-zero template, not an error.
func GetNutrientHistory(clientEmail, metric, period string) (*HistoryReport, error) {
	numDays, err := ValidateHistoryParams(metric, period)
	if err != nil {
		return nil, err
	}

	client, err := findClient(clientEmail)
	if err != nil {
		return nil, err
	}

	goals, err := utils.ComputeDailyGoals(clientAnthropometrics(client), time.Now())
	if err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -numDays)

	var entries []models.MealHistory
	if err := config.DB.
		Where("client_id = ? AND day > ? AND day <= ?", client.ID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	for i := range entries {
		sums[entries[i].Day.Format("2006-01-02")] += metricValue(&entries[i], metric)
	}

	return &HistoryReport{
		Metric: metric,
		Period: period,
		Goal:   metricGoal(goals, metric),
		Series: BuildDailySeries(numDays, end, sums),
	}, nil
}
