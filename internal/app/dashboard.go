package app

import (
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/progress"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

// Dashboard is the read-only progress overview.
type Dashboard struct {
	Today           models.DietDay
	CalorieGoal     int
	WaterGoal       int
	AvgCalories     float64
	AvgCaloriesDays int
	WeightDelta     float64
	HasWeightDelta  bool
	WeeklySets      []int // index 0 is the last seven days
	SetsPerMuscle   map[string]int
	Streak          int
	Records         []progress.Record
	WorkoutActive   bool
}

// Dashboard computes the progress figures from the current profile.
func (s *Session) Dashboard(weeks int) Dashboard {
	s.lock()
	defer s.unlock()

	now := s.now()
	d := s.data
	out := Dashboard{
		CalorieGoal:   d.Settings.CalorieGoal,
		WaterGoal:     d.Settings.WaterGoal,
		WeeklySets:    progress.WeeklySetCounts(d.SetsLog, now, weeks),
		SetsPerMuscle: progress.SetsPerMuscle(d.SetsLog, now),
		Streak:        progress.DayStreak(d.SetsLog, now),
		Records:       progress.BestEstimated1RM(d.SetsLog),
		WorkoutActive: d.ActiveWorkout != nil,
	}
	if day, ok := d.DietLog[utils.DateKey(now)]; ok && day != nil {
		out.Today = models.DietDay{
			Entries: append([]models.Entry(nil), day.Entries...),
			Totals:  day.Totals,
			Water:   day.Water,
		}
	}
	out.AvgCalories, out.AvgCaloriesDays = progress.AverageCalories(d.DietLog, now, 7)
	out.WeightDelta, out.HasWeightDelta = progress.WeightDelta(d.WeightLog, 7)
	return out
}
