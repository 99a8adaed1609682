// Package rest implements the rest timer as a wall-clock state machine.
//
// The timer never counts down by itself: a running timer only stores its
// absolute deadline (EndAt) and every observation recomputes the remaining
// time from it. That keeps a persisted timer accurate across restarts.
package rest

import (
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

const (
	MinSec = 30
	MaxSec = 600

	// AdjustStep is the default +/- nudge offered by the front end.
	AdjustStep = 15 * time.Second
)

// New returns an idle timer primed with the given duration.
func New(durationSec int) models.RestState {
	durationSec = utils.Clamp(durationSec, MinSec, MaxSec)
	return models.RestState{
		State:       models.RestIdle,
		DurationSec: durationSec,
		RemainingMs: int64(durationSec) * 1000,
	}
}

// Start moves an idle or paused timer to running. It reports false when the
// timer was already running.
func Start(st *models.RestState, now time.Time) bool {
	if st.State == models.RestRunning && st.EndAt != nil {
		return false
	}
	remaining := st.RemainingMs
	// A paused timer keeps what it had left, even nothing; it then expires
	// on the next tick.
	if remaining <= 0 && st.State != models.RestPaused {
		remaining = int64(st.DurationSec) * 1000
	}
	remaining = max(0, remaining)
	endAt := now.Add(time.Duration(remaining) * time.Millisecond)
	st.State = models.RestRunning
	st.RemainingMs = remaining
	st.EndAt = &endAt
	return true
}

// Pause snapshots the remaining time of a running timer.
func Pause(st *models.RestState, now time.Time) bool {
	if st.State != models.RestRunning || st.EndAt == nil {
		return false
	}
	st.RemainingMs = max(0, st.EndAt.Sub(now).Milliseconds())
	st.State = models.RestPaused
	st.EndAt = nil
	return true
}

// Reset returns the timer to idle with its full duration.
func Reset(st *models.RestState) {
	st.State = models.RestIdle
	st.RemainingMs = int64(st.DurationSec) * 1000
	st.EndAt = nil
}

// Skip ends the rest early. It reports whether a rest was actually cut short.
func Skip(st *models.RestState) bool {
	active := st.State != models.RestIdle
	Reset(st)
	return active
}

// Adjust shifts the deadline of a running timer by delta, or changes the
// configured duration of an idle or paused one.
func Adjust(st *models.RestState, delta time.Duration, now time.Time) {
	if st.State == models.RestRunning && st.EndAt != nil {
		endAt := st.EndAt.Add(delta)
		st.EndAt = &endAt
		st.RemainingMs = max(0, endAt.Sub(now).Milliseconds())
		return
	}
	st.DurationSec = utils.Clamp(st.DurationSec+int(delta/time.Second), MinSec, MaxSec)
	st.RemainingMs = int64(st.DurationSec) * 1000
}

// Tick recomputes the remaining time of a running timer and reports whether
// the rest has just expired. An expired timer is idle again with its full duration.
func Tick(st *models.RestState, now time.Time) bool {
	if st.State != models.RestRunning {
		return false
	}
	if st.EndAt == nil {
		// Running without a deadline can only come from a hand-edited snapshot.
		Reset(st)
		return false
	}
	st.RemainingMs = st.EndAt.Sub(now).Milliseconds()
	if st.RemainingMs > 0 {
		return false
	}
	Reset(st)
	return true
}

// Resume brings a timer loaded from storage up to date with the wall clock.
func Resume(st *models.RestState, now time.Time) bool {
	switch st.State {
	case models.RestRunning, models.RestPaused, models.RestIdle:
	default:
		st.State = models.RestIdle
	}
	if st.DurationSec == 0 {
		st.DurationSec = MinSec
	}
	if st.State != models.RestRunning {
		st.EndAt = nil
	}
	return Tick(st, now)
}

// Remaining returns the time left, derived from EndAt while running.
func Remaining(st models.RestState, now time.Time) time.Duration {
	if st.State == models.RestRunning && st.EndAt != nil {
		return max(0, st.EndAt.Sub(now))
	}
	return time.Duration(st.RemainingMs) * time.Millisecond
}
