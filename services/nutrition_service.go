package services

import (
	"math"
	"time"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/utils"
)

// DailyReport is the goal/ratio/left-to-consume summary for one day.
// Ratios is nil when the client has no entries for the day; the
// handler turns that into the "no history yet" message rather than a
// math error.
type DailyReport struct {
	Day   string `json:"day"`
	Goals struct {
		Calories float64 `json:"calories"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		Proteins float64 `json:"proteins"`
	} `json:"goals"`
	Totals utils.Totals       `json:"totals"`
	Ratios *utils.RatioReport `json:"ratios,omitempty"`
	Left   utils.LeftReport   `json:"left_to_consume"`
}

func clientAnthropometrics(client *models.Client) utils.Anthropometrics {
	return utils.Anthropometrics{
		Sex:           client.Sex,
		Height:        client.Height,
		CurrentWeight: client.CurrentWeight,
		WeightGoal:    client.WeightGoal,
		BirthDate:     client.User.BirthDate,
	}
}

// GetDailyReport recomputes everything from stored state; nothing is
// cached between requests.
func GetDailyReport(clientEmail, dayStr string) (*DailyReport, error) {
	client, err := findClient(clientEmail)
	if err != nil {
		return nil, err
	}

	goals, err := utils.ComputeDailyGoals(clientAnthropometrics(client), time.Now())
	if err != nil {
		return nil, err
	}

	day, err := parseDay(dayStr)
	if err != nil {
		return nil, err
	}

	var entries []models.MealHistory
	if err := config.DB.
		Where("client_id = ? AND day = ?", client.ID, day).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	totals := DayTotals(entries)

	report := &DailyReport{Day: dayStr, Totals: totals}
	report.Goals.Calories = math.Round(goals.Calories)
	report.Goals.Carbs = math.Round(goals.Carbs)
	report.Goals.Fat = math.Round(goals.Fat)
	report.Goals.Proteins = math.Round(goals.Proteins)
	report.Left = utils.BuildLeftReport(totals, goals)

	if len(entries) > 0 && totals.Calories > 0 {
		ratios, err := utils.BuildRatioReport(totals, goals)
		if err != nil {
			return nil, err
		}
		report.Ratios = ratios
	}

	return report, nil
}
