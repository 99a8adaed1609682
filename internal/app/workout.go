package app

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"
	"github.com/misterclayt0n/ironlog/internal/templates"
	"github.com/misterclayt0n/ironlog/internal/workout"
)

func activeWorkout(d *models.ProfileData) (*models.ActiveWorkout, error) {
	if d.ActiveWorkout == nil {
		return nil, models.Precondition("no workout in progress")
	}
	return d.ActiveWorkout, nil
}

// StartWorkout starts a live workout from the template with the given id or
// name. Replacing an unfinished workout requires confirm.
func (s *Session) StartWorkout(ctx context.Context, templateRef string, confirm bool) error {
	return s.mutate(ctx, "start-workout", func(d *models.ProfileData, now time.Time) (string, error) {
		tpl, ok := templates.Find(d.Templates, templateRef)
		if !ok {
			return "", models.Precondition("template %q not found", templateRef)
		}
		if d.ActiveWorkout != nil && !confirm {
			return "", models.Precondition("workout %q is still in progress; confirm to replace it", d.ActiveWorkout.Name)
		}
		w, err := s.engine.Start(tpl, now)
		if err != nil {
			return "", err
		}
		d.ActiveWorkout = w
		return fmt.Sprintf("Started %s", w.Name), nil
	})
}

// LogSet records a set on the current exercise and starts the rest timer.
// It returns the rest duration in seconds.
func (s *Session) LogSet(ctx context.Context, weight float64, reps int, rir *int) (int, error) {
	var dur int
	err := s.mutate(ctx, "log-set", func(d *models.ProfileData, now time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		dur, err = s.engine.LogSet(w, weight, reps, rir, now)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Set logged, resting %s", formatSeconds(dur)), nil
	})
	if err != nil {
		return 0, err
	}
	s.notifier.Haptic()
	return dur, nil
}

// Next moves to the following exercise and reports whether it moved.
func (s *Session) Next(ctx context.Context) (bool, error) {
	return s.navigate(ctx, "next", func(w *models.ActiveWorkout) bool { return s.engine.Next(w) })
}

// Prev moves to the previous exercise and reports whether it moved.
func (s *Session) Prev(ctx context.Context) (bool, error) {
	return s.navigate(ctx, "prev", func(w *models.ActiveWorkout) bool { return s.engine.Prev(w) })
}

func (s *Session) navigate(ctx context.Context, name string, move func(w *models.ActiveWorkout) bool) (bool, error) {
	moved := false
	err := s.mutate(ctx, name, func(d *models.ProfileData, _ time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		moved = move(w)
		return "", nil
	})
	return moved, err
}

// Jump selects the exercise at the zero-based index.
func (s *Session) Jump(ctx context.Context, index int) error {
	return s.mutate(ctx, "jump", func(d *models.ProfileData, _ time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		return "", s.engine.Jump(w, index)
	})
}

// StartRest starts or resumes the rest timer. It reports false when the timer
// was already running.
func (s *Session) StartRest(ctx context.Context) (bool, error) {
	started := false
	err := s.mutate(ctx, "rest-start", func(d *models.ProfileData, now time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		started = rest.Start(&w.Rest, now)
		return "", nil
	})
	return started, err
}

func (s *Session) PauseRest(ctx context.Context) (bool, error) {
	paused := false
	err := s.mutate(ctx, "rest-pause", func(d *models.ProfileData, now time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		paused = rest.Pause(&w.Rest, now)
		return "", nil
	})
	return paused, err
}

func (s *Session) ResetRest(ctx context.Context) error {
	return s.mutate(ctx, "rest-reset", func(d *models.ProfileData, _ time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		rest.Reset(&w.Rest)
		return "", nil
	})
}

// SkipRest ends the rest early and reports whether one was actually running
// or paused.
func (s *Session) SkipRest(ctx context.Context) (bool, error) {
	skipped := false
	err := s.mutate(ctx, "rest-skip", func(d *models.ProfileData, _ time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		skipped = rest.Skip(&w.Rest)
		return "", nil
	})
	return skipped, err
}

// AdjustRest moves the deadline of a running timer, or changes the duration of
// an idle or paused one, by delta.
func (s *Session) AdjustRest(ctx context.Context, delta time.Duration) error {
	return s.mutate(ctx, "rest-adjust", func(d *models.ProfileData, now time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		rest.Adjust(&w.Rest, delta, now)
		return "", nil
	})
}

// FinishWorkout appends every completed set to the sets log and clears the
// active workout. It returns the number of sets saved.
func (s *Session) FinishWorkout(ctx context.Context) (int, error) {
	n := 0
	err := s.mutate(ctx, "finish-workout", func(d *models.ProfileData, now time.Time) (string, error) {
		w, err := activeWorkout(d)
		if err != nil {
			return "", err
		}
		rows := s.engine.Finish(w, now)
		d.SetsLog = append(d.SetsLog, rows...)
		d.ActiveWorkout = nil
		n = len(rows)
		return fmt.Sprintf("Workout saved: %d sets", n), nil
	})
	return n, err
}

// DiscardWorkout drops the active workout without touching the sets log.
func (s *Session) DiscardWorkout(ctx context.Context, confirm bool) error {
	return s.mutate(ctx, "discard-workout", func(d *models.ProfileData, _ time.Time) (string, error) {
		if _, err := activeWorkout(d); err != nil {
			return "", err
		}
		if !confirm {
			return "", models.Precondition("discarding the workout needs confirmation")
		}
		d.ActiveWorkout = nil
		return "Workout discarded", nil
	})
}

// WorkoutSummary returns the progress of the active workout.
func (s *Session) WorkoutSummary() (workout.Summary, bool) {
	s.lock()
	defer s.unlock()
	if s.data.ActiveWorkout == nil {
		return workout.Summary{}, false
	}
	return workout.Summarize(s.data.ActiveWorkout), true
}

// Rest returns a copy of the rest timer and its remaining time.
func (s *Session) Rest() (models.RestState, time.Duration, bool) {
	s.lock()
	defer s.unlock()
	w := s.data.ActiveWorkout
	if w == nil {
		return models.RestState{}, 0, false
	}
	st := w.Rest
	if st.EndAt != nil {
		endAt := *st.EndAt
		st.EndAt = &endAt
	}
	return st, rest.Remaining(st, s.now()), true
}

func formatSeconds(sec int) string {
	return (time.Duration(sec) * time.Second).String()
}
