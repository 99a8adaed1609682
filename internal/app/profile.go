package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/misterclayt0n/ironlog/internal/workout"
)

// UpdateSettings replaces the profile settings.
func (s *Session) UpdateSettings(ctx context.Context, st models.Settings) error {
	return s.mutate(ctx, "update-settings", func(d *models.ProfileData, _ time.Time) (string, error) {
		st.Name = strings.TrimSpace(st.Name)
		if st.Name == "" {
			return "", models.Invalid("name", "profile name is required")
		}
		if st.CalorieGoal < 0 {
			return "", models.Invalid("calorieGoal", "must not be negative")
		}
		if st.WaterGoal < 0 {
			return "", models.Invalid("waterGoal", "must not be negative")
		}
		d.Settings = st
		return "Settings saved", nil
	})
}

// SetRestDefaults changes the rest durations used for new recommendations.
// A rest already in progress keeps its duration.
func (s *Session) SetRestDefaults(ctx context.Context, rd models.RestDefaults) error {
	return s.mutate(ctx, "rest-defaults", func(d *models.ProfileData, _ time.Time) (string, error) {
		if rd.CompoundSec < rest.MinSec || rd.CompoundSec > rest.MaxSec {
			return "", models.Invalid("compoundSec", "must be between %d and %d", rest.MinSec, rest.MaxSec)
		}
		if rd.AccessorySec < rest.MinSec || rd.AccessorySec > rest.MaxSec {
			return "", models.Invalid("accessorySec", "must be between %d and %d", rest.MinSec, rest.MaxSec)
		}
		d.RestDefaults = rd
		s.engine = workout.NewEngine(rd)
		return "Rest defaults saved", nil
	})
}

// LogWeight records a body weight for the day (YYYY-MM-DD, empty for today).
// A second weigh-in on the same day replaces the first.
func (s *Session) LogWeight(ctx context.Context, date string, weight float64) error {
	return s.mutate(ctx, "log-weight", func(d *models.ProfileData, now time.Time) (string, error) {
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
			return "", models.Invalid("weight", "must be greater than 0")
		}
		if date == "" {
			date = utils.DateKey(now)
		}
		if _, err := utils.ParseDate(date); err != nil {
			return "", models.Invalid("date", "expected YYYY-MM-DD, got %q", date)
		}

		replaced := false
		for i := range d.WeightLog {
			if d.WeightLog[i].Date == date {
				d.WeightLog[i].Weight = weight
				replaced = true
			}
		}
		if !replaced {
			d.WeightLog = append(d.WeightLog, models.WeightEntry{Date: date, Weight: weight})
			sort.SliceStable(d.WeightLog, func(i, j int) bool { return d.WeightLog[i].Date < d.WeightLog[j].Date })
		}
		return fmt.Sprintf("Weight %.1f logged for %s", weight, date), nil
	})
}
