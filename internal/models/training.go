package models

import "time"

const (
	RestIdle    = "idle"
	RestRunning = "running"
	RestPaused  = "paused"
)

// RestState is the persisted rest timer. EndAt is non-nil iff State is running;
// RemainingMs is authoritative only while the timer is not running.
type RestState struct {
	State       string     `json:"state"`
	DurationSec int        `json:"durationSec"`
	RemainingMs int64      `json:"remainingMs"`
	EndAt       *time.Time `json:"endAt"`
}

type CompletedSet struct {
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	RIR       *int      `json:"rir"`
	Timestamp time.Time `json:"timestamp"`
}

type ActiveWorkoutItem struct {
	ExerciseID    string         `json:"exerciseId"`
	Name          string         `json:"name"`
	MuscleGroup   string         `json:"muscleGroup"`
	TargetSets    int            `json:"targetSets"`
	Type          string         `json:"type"`
	RestMode      string         `json:"restMode"`
	CustomRestSec *int           `json:"customRestSec"`
	SetsCompleted []CompletedSet `json:"setsCompleted"`
}

type ActiveWorkout struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	TemplateID           string              `json:"templateId,omitempty"`
	StartedAt            time.Time           `json:"startedAt"`
	EndedAt              *time.Time          `json:"endedAt"`
	CurrentExerciseIndex int                 `json:"currentExerciseIndex"`
	Rest                 RestState           `json:"rest"`
	Items                []ActiveWorkoutItem `json:"items"`
}

// Current returns the item under the cursor.
func (w *ActiveWorkout) Current() *ActiveWorkoutItem {
	if w == nil || w.CurrentExerciseIndex < 0 || w.CurrentExerciseIndex >= len(w.Items) {
		return nil
	}
	return &w.Items[w.CurrentExerciseIndex]
}

// SetLogEntry is a row of the permanent sets log. Name and muscle group are
// copied at completion time.
type SetLogEntry struct {
	Date         time.Time `json:"date"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	MuscleGroup  string    `json:"muscleGroup"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	RIR          *int      `json:"rir"`
}

type WeightEntry struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}
