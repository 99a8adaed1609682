// Package workout drives a live training session: it seeds the session from a
// template, records sets, moves between exercises and produces the rows that
// get flushed into the permanent sets log.
package workout

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"
)

// Engine carries the rest configuration used for every recommendation.
type Engine struct {
	Rest models.RestDefaults
}

func NewEngine(cfg models.RestDefaults) *Engine {
	return &Engine{Rest: cfg}
}

// Start builds a new active workout from the template. Rest is primed with the
// first exercise's base duration and left idle.
func (e *Engine) Start(tpl models.Template, now time.Time) (*models.ActiveWorkout, error) {
	if len(tpl.Items) == 0 {
		return nil, models.Precondition("template %q has no exercises", tpl.Name)
	}

	w := &models.ActiveWorkout{
		ID:         uuid.New().String(),
		Name:       tpl.Name,
		TemplateID: tpl.ID,
		StartedAt:  now.UTC(),
		Items:      make([]models.ActiveWorkoutItem, 0, len(tpl.Items)),
	}
	for _, it := range tpl.Clone().Items {
		item := models.ActiveWorkoutItem{
			ExerciseID:    it.ExerciseID,
			Name:          it.Name,
			MuscleGroup:   it.MuscleGroup,
			TargetSets:    it.Sets,
			Type:          it.Type,
			RestMode:      it.RestMode,
			SetsCompleted: []models.CompletedSet{},
		}
		if it.RestMode == models.RestModeCustom {
			item.CustomRestSec = it.RestSec
		}
		w.Items = append(w.Items, item)
	}

	w.Rest = rest.New(e.baseRest(w.Items[0]))
	return w, nil
}

// LogSet validates and appends a set to the current exercise, then starts the
// rest timer with a duration biased by that set. It returns the started rest
// duration in seconds.
func (e *Engine) LogSet(w *models.ActiveWorkout, weight float64, reps int, rir *int, now time.Time) (int, error) {
	item := w.Current()
	if item == nil {
		return 0, models.Precondition("no exercise selected")
	}
	if err := ValidateSet(weight, reps, rir); err != nil {
		return 0, err
	}

	set := models.CompletedSet{
		Weight:    weight,
		Reps:      reps,
		Timestamp: now.UTC(),
	}
	if rir != nil {
		v := *rir
		set.RIR = &v
	}
	item.SetsCompleted = append(item.SetsCompleted, set)

	dur := rest.Recommend(rest.TargetOf(*item), &set, e.Rest)
	w.Rest = rest.New(dur)
	rest.Start(&w.Rest, now)
	return dur, nil
}

// ValidateSet checks user-entered set values.
func ValidateSet(weight float64, reps int, rir *int) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return models.Invalid("weight", "must be a number of at least 0")
	}
	if reps <= 0 {
		return models.Invalid("reps", "must be a positive whole number")
	}
	if rir != nil && *rir < 0 {
		return models.Invalid("rir", "must be 0 or more")
	}
	return nil
}

// Next moves to the following exercise. It reports false at the last one.
func (e *Engine) Next(w *models.ActiveWorkout) bool {
	return e.Jump(w, w.CurrentExerciseIndex+1) == nil
}

// Prev moves to the previous exercise. It reports false at the first one.
func (e *Engine) Prev(w *models.ActiveWorkout) bool {
	return e.Jump(w, w.CurrentExerciseIndex-1) == nil
}

// Jump selects the exercise at index. Rest restarts idle from that exercise's
// base duration; the previous exercise's last set does not carry over.
func (e *Engine) Jump(w *models.ActiveWorkout, index int) error {
	if index < 0 || index >= len(w.Items) {
		return models.Invalid("index", "exercise %d does not exist", index+1)
	}
	if index == w.CurrentExerciseIndex {
		return nil
	}
	w.CurrentExerciseIndex = index
	w.Rest = rest.New(e.baseRest(w.Items[index]))
	return nil
}

// Finish stamps the end time and returns one sets log row per completed set.
func (e *Engine) Finish(w *models.ActiveWorkout, now time.Time) []models.SetLogEntry {
	end := now.UTC()
	w.EndedAt = &end
	rest.Reset(&w.Rest)

	var rows []models.SetLogEntry
	for _, item := range w.Items {
		for _, s := range item.SetsCompleted {
			row := models.SetLogEntry{
				Date:         s.Timestamp,
				ExerciseID:   item.ExerciseID,
				ExerciseName: item.Name,
				MuscleGroup:  item.MuscleGroup,
				Weight:       s.Weight,
				Reps:         s.Reps,
			}
			if s.RIR != nil {
				v := *s.RIR
				row.RIR = &v
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func (e *Engine) baseRest(item models.ActiveWorkoutItem) int {
	return rest.Recommend(rest.TargetOf(item), nil, e.Rest)
}
