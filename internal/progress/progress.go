// Package progress aggregates the persisted logs into the figures shown on
// the dashboard. Every function is read-only over its inputs.
package progress

import (
	"sort"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

const Week = 7 * 24 * time.Hour

// AverageCalories returns the mean daily calories over the trailing window of
// calendar days ending today. Days without entries are ignored; the second
// result is how many days contributed.
func AverageCalories(log map[string]*models.DietDay, now time.Time, days int) (float64, int) {
	today := utils.StartOfDay(now)
	total, counted := 0, 0
	for i := 0; i < days; i++ {
		day, ok := log[utils.DateKey(today.AddDate(0, 0, -i))]
		if !ok || day == nil || len(day.Entries) == 0 {
			continue
		}
		total += day.Totals.Calories
		counted++
	}
	if counted == 0 {
		return 0, 0
	}
	return float64(total) / float64(counted), counted
}

// WeightDelta returns last minus first over the most recent n weigh-ins.
// ok is false when fewer than two entries exist.
func WeightDelta(weights []models.WeightEntry, n int) (delta float64, ok bool) {
	sorted := append([]models.WeightEntry(nil), weights...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	if len(sorted) < 2 {
		return 0, false
	}
	return sorted[len(sorted)-1].Weight - sorted[0].Weight, true
}

// WeeklySetCounts counts sets in rolling seven-day windows anchored at now.
// Index 0 is (now-7d, now], index 1 is (now-14d, now-7d] and so on.
func WeeklySetCounts(log []models.SetLogEntry, now time.Time, weeks int) []int {
	if weeks <= 0 {
		return nil
	}
	counts := make([]int, weeks)
	for _, s := range log {
		age := now.Sub(s.Date)
		if age < 0 {
			continue
		}
		if i := int(age / Week); i < weeks {
			counts[i]++
		}
	}
	return counts
}

// SetsPerMuscle groups the sets of the last seven days by muscle group.
func SetsPerMuscle(log []models.SetLogEntry, now time.Time) map[string]int {
	out := make(map[string]int)
	from := now.Add(-Week)
	for _, s := range log {
		if s.Date.After(from) && !s.Date.After(now) {
			out[s.MuscleGroup]++
		}
	}
	return out
}

// DayStreak counts consecutive local days with at least one logged set. A
// streak that ended yesterday is still alive until today is over.
func DayStreak(log []models.SetLogEntry, now time.Time) int {
	days := make(map[string]bool, len(log))
	for _, s := range log {
		days[utils.DateKey(s.Date)] = true
	}

	cursor := utils.StartOfDay(now)
	if !days[utils.DateKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for days[utils.DateKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// Record is the best single-set strength estimate for an exercise.
type Record struct {
	ExerciseID   string
	ExerciseName string
	Weight       float64
	Reps         int
	Estimated1RM float64
	Date         time.Time
}

// BestEstimated1RM returns the best Epley estimate per exercise, strongest first.
func BestEstimated1RM(log []models.SetLogEntry) []Record {
	best := make(map[string]Record)
	for _, s := range log {
		est := utils.CalculateEpley1RM(s.Weight, s.Reps)
		if cur, ok := best[s.ExerciseID]; ok && cur.Estimated1RM >= est {
			continue
		}
		best[s.ExerciseID] = Record{
			ExerciseID:   s.ExerciseID,
			ExerciseName: s.ExerciseName,
			Weight:       s.Weight,
			Reps:         s.Reps,
			Estimated1RM: est,
			Date:         s.Date,
		}
	}

	out := make([]Record, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Estimated1RM != out[j].Estimated1RM {
			return out[i].Estimated1RM > out[j].Estimated1RM
		}
		return out[i].ExerciseID < out[j].ExerciseID
	})
	return out
}
