package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MyLifeUa/rest-api/models"
)

func TestValidateHistoryParams(t *testing.T) {
	tests := []struct {
		name     string
		metric   string
		period   string
		wantDays int
		wantErr  bool
	}{
		{"calories over a week", "calories", "week", 7, false},
		{"fat over a month", "fat", "month", 30, false},
		{"carbs over three months", "carbs", "3-months", 90, false},
		{"proteins over a week", "proteins", "week", 7, false},
		{"unknown metric", "sodium", "week", 0, true},
		{"unknown period", "calories", "year", 0, true},
		{"empty metric", "", "week", 0, true},
		{"empty period", "calories", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ValidateHistoryParams(tt.metric, tt.period)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidParameter) {
					t.Fatalf("error = %v, want ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if days != tt.wantDays {
				t.Errorf("days = %d, want %d", days, tt.wantDays)
			}
		})
	}
}

func TestBuildDailySeries(t *testing.T) {
	end := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	// One entry three days ago, nothing else in the window.
	sums := map[string]float64{
		"2026-08-25": 500,
	}

	series := BuildDailySeries(7, end, sums)

	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Day != "2026-08-22" {
		t.Errorf("first day = %s, want 2026-08-22", series[0].Day)
	}
	if series[6].Day != "2026-08-28" {
		t.Errorf("last day = %s, want 2026-08-28", series[6].Day)
	}

	seen := map[string]bool{}
	for i, point := range series {
		if seen[point.Day] {
			t.Errorf("duplicate day %s", point.Day)
		}
		seen[point.Day] = true
		if i > 0 && series[i-1].Day >= point.Day {
			t.Errorf("series not chronological at index %d: %s then %s", i, series[i-1].Day, point.Day)
		}

		want := 0.0
		if point.Day == "2026-08-25" {
			want = 500
		}
		if point.Value != want {
			t.Errorf("day %s value = %f, want %f", point.Day, point.Value, want)
		}
	}
}

func TestBuildDailySeriesEmptyWindow(t *testing.T) {
	end := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	series := BuildDailySeries(30, end, map[string]float64{})

	if len(series) != 30 {
		t.Fatalf("series length = %d, want 30", len(series))
	}
	for _, point := range series {
		if point.Value != 0 {
			t.Errorf("day %s value = %f, want 0", point.Day, point.Value)
		}
	}
}

func TestBuildDailySeriesSumsAndRounds(t *testing.T) {
	end := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	// Pre-summed per-day values are rounded for display.
	sums := map[string]float64{
		"2026-08-27": 350.4,
		"2026-08-28": 420.6,
	}

	series := BuildDailySeries(7, end, sums)

	if got := series[5].Value; got != 350 {
		t.Errorf("2026-08-27 value = %f, want 350", got)
	}
	if got := series[6].Value; got != 421 {
		t.Errorf("2026-08-28 value = %f, want 421", got)
	}
}
