package rest_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var t0 = time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

func TestStart_FromIdleUsesDuration(t *testing.T) {
	st := rest.New(150)
	st.RemainingMs = 0

	require.True(t, rest.Start(&st, t0))
	assert.Equal(t, models.RestRunning, st.State)
	require.NotNil(t, st.EndAt)
	assert.Equal(t, t0.Add(150*time.Second), *st.EndAt)
}

func TestStart_AlreadyRunningIsNoop(t *testing.T) {
	st := rest.New(90)
	require.True(t, rest.Start(&st, t0))
	endAt := *st.EndAt

	assert.False(t, rest.Start(&st, t0.Add(10*time.Second)))
	assert.Equal(t, endAt, *st.EndAt)
}

func TestPauseResume_NoElapsedTimeKeepsRemaining(t *testing.T) {
	st := rest.New(120)
	rest.Start(&st, t0)

	require.True(t, rest.Pause(&st, t0.Add(20*time.Second)))
	assert.Equal(t, models.RestPaused, st.State)
	assert.Nil(t, st.EndAt)
	assert.Equal(t, int64(100_000), st.RemainingMs)

	resumeAt := t0.Add(5 * time.Minute)
	require.True(t, rest.Start(&st, resumeAt))
	require.True(t, rest.Pause(&st, resumeAt))
	assert.Equal(t, int64(100_000), st.RemainingMs)
}

func TestPause_NotRunning(t *testing.T) {
	st := rest.New(120)
	assert.False(t, rest.Pause(&st, t0))
	assert.Equal(t, models.RestIdle, st.State)
}

func TestPause_PastDeadlineClampsToZero(t *testing.T) {
	st := rest.New(30)
	rest.Start(&st, t0)
	rest.Pause(&st, t0.Add(time.Minute))
	assert.Equal(t, int64(0), st.RemainingMs)
}

func TestStart_PausedPastDeadlineExpires(t *testing.T) {
	st := rest.New(150)
	rest.Start(&st, t0)
	require.True(t, rest.Pause(&st, t0.Add(151*time.Second)))
	require.Equal(t, int64(0), st.RemainingMs)

	resumeAt := t0.Add(152 * time.Second)
	require.True(t, rest.Start(&st, resumeAt))
	assert.Equal(t, time.Duration(0), rest.Remaining(st, resumeAt))
	assert.True(t, rest.Tick(&st, resumeAt), "nothing was left, so the rest is over")
	assert.Equal(t, models.RestIdle, st.State)
	assert.Equal(t, int64(150_000), st.RemainingMs)
}

func TestReset(t *testing.T) {
	st := rest.New(150)
	rest.Start(&st, t0)
	rest.Reset(&st)

	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, st.EndAt)
	assert.Equal(t, int64(150_000), st.RemainingMs)
}

func TestSkip(t *testing.T) {
	st := rest.New(150)
	assert.False(t, rest.Skip(&st))

	rest.Start(&st, t0)
	assert.True(t, rest.Skip(&st))
	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, st.EndAt)
	assert.Equal(t, int64(150_000), st.RemainingMs)
}

func TestAdjust_RunningShiftsDeadline(t *testing.T) {
	st := rest.New(60)
	rest.Start(&st, t0)

	rest.Adjust(&st, rest.AdjustStep, t0)
	assert.Equal(t, t0.Add(75*time.Second), *st.EndAt)
	assert.Equal(t, 60, st.DurationSec)

	// shortening below zero is allowed; the next tick expires the timer
	now := t0.Add(70 * time.Second)
	rest.Adjust(&st, -rest.AdjustStep, now)
	assert.Equal(t, int64(0), st.RemainingMs)
	assert.True(t, rest.Tick(&st, now))
	assert.Equal(t, models.RestIdle, st.State)
}

func TestAdjust_IdleClampsDuration(t *testing.T) {
	st := rest.New(40)
	rest.Adjust(&st, -rest.AdjustStep, t0)
	assert.Equal(t, 30, st.DurationSec)
	assert.Equal(t, int64(30_000), st.RemainingMs)

	st = rest.New(590)
	rest.Adjust(&st, rest.AdjustStep, t0)
	assert.Equal(t, 600, st.DurationSec)

	st = rest.New(100)
	rest.Adjust(&st, 45*time.Second, t0)
	assert.Equal(t, 145, st.DurationSec)
	assert.Equal(t, int64(145_000), st.RemainingMs)
}

func TestTick(t *testing.T) {
	st := rest.New(30)
	assert.False(t, rest.Tick(&st, t0), "idle timer never expires")

	rest.Start(&st, t0)
	assert.False(t, rest.Tick(&st, t0.Add(29*time.Second)))
	assert.Equal(t, int64(1000), st.RemainingMs)

	assert.True(t, rest.Tick(&st, t0.Add(30*time.Second)))
	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, st.EndAt)
	assert.Equal(t, int64(30_000), st.RemainingMs)

	assert.False(t, rest.Tick(&st, t0.Add(31*time.Second)), "expiry fires once")
}

func TestSerializedTimerSurvivesRestart(t *testing.T) {
	st := rest.New(150)
	rest.Start(&st, t0)

	raw, err := json.Marshal(st)
	require.NoError(t, err)

	var loaded models.RestState
	require.NoError(t, json.Unmarshal(raw, &loaded))

	expired := rest.Resume(&loaded, t0.Add(40*time.Second))
	require.False(t, expired)
	assert.Equal(t, models.RestRunning, loaded.State)
	assert.InDelta(t, 110_000, loaded.RemainingMs, 1000)
	assert.InDelta(t, float64(110*time.Second), float64(rest.Remaining(loaded, t0.Add(40*time.Second))), float64(time.Second))
}

func TestResume_ExpiredWhileAway(t *testing.T) {
	st := rest.New(60)
	rest.Start(&st, t0)

	assert.True(t, rest.Resume(&st, t0.Add(10*time.Minute)))
	assert.Equal(t, models.RestIdle, st.State)
}

func TestResume_RepairsInconsistentSnapshot(t *testing.T) {
	endAt := t0
	st := models.RestState{State: models.RestPaused, DurationSec: 90, RemainingMs: 5000, EndAt: &endAt}
	assert.False(t, rest.Resume(&st, t0))
	assert.Nil(t, st.EndAt)
	assert.Equal(t, int64(5000), st.RemainingMs)

	st = models.RestState{State: "bogus"}
	rest.Resume(&st, t0)
	assert.Equal(t, models.RestIdle, st.State)
	assert.Equal(t, rest.MinSec, st.DurationSec)
}
