package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/app/mocks"
	"github.com/misterclayt0n/ironlog/internal/diet"
	"github.com/misterclayt0n/ironlog/internal/models"
	notifymocks "github.com/misterclayt0n/ironlog/internal/notify/mocks"
	"github.com/misterclayt0n/ironlog/internal/refdata"
	"github.com/misterclayt0n/ironlog/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2024, 5, 15, 18, 0, 0, 0, time.Local)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type memStore struct {
	mu    sync.Mutex
	rows  map[string]models.Profile
	saves int
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]models.Profile)}
}

func (m *memStore) Get(_ context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	p.Data = append(json.RawMessage(nil), p.Data...)
	return &p, nil
}

func (m *memStore) Save(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Data = append(json.RawMessage(nil), p.Data...)
	m.rows[p.ID] = cp
	m.saves++
	return nil
}

func (m *memStore) data(t *testing.T, id string) models.ProfileData {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	var d models.ProfileData
	require.NoError(t, json.Unmarshal(m.rows[id].Data, &d))
	return d
}

func (m *memStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

type fixture struct {
	store *memStore
	clock *clock
	opts  app.Options
}

func newFixture() *fixture {
	f := &fixture{store: newMemStore(), clock: newClock()}
	f.opts = app.Options{
		Store:        f.store,
		Library:      refdata.Default(),
		Now:          f.clock.Now,
		TickInterval: 5 * time.Millisecond,
	}
	return f
}

func (f *fixture) create(t *testing.T) *app.Session {
	t.Helper()
	s, err := app.Create(context.Background(), f.opts, "me", "Me")
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func (f *fixture) open(t *testing.T) *app.Session {
	t.Helper()
	s, err := app.Open(context.Background(), f.opts, "me")
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func pushDay(t *testing.T, s *app.Session) models.Template {
	t.Helper()
	d := &templates.Draft{Name: "Push Day"}
	bench, ok := refdata.Default().Exercise("bench-press")
	require.True(t, ok)
	d.AddExercise(bench)
	raise, _ := refdata.Default().Exercise("lateral-raise")
	d.AddExercise(raise)

	tpl, err := s.SaveTemplate(context.Background(), d)
	require.NoError(t, err)
	return tpl
}

func intPtr(v int) *int { return &v }

func TestPushDayScenario(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))

	dur, err := s.LogSet(ctx, 135, 8, intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, 150, dur)

	st, remaining, ok := s.Rest()
	require.True(t, ok)
	assert.Equal(t, models.RestRunning, st.State)
	assert.Equal(t, 150*time.Second, remaining)
	assert.NotNil(t, s.RestDone(), "tick loop runs while resting")

	n, err := s.FinishWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Nil(t, s.RestDone(), "finishing stops the tick loop")

	saved := f.store.data(t, "me")
	assert.Nil(t, saved.ActiveWorkout)
	require.Len(t, saved.SetsLog, 1)
	row := saved.SetsLog[0]
	assert.Equal(t, "Bench Press", row.ExerciseName)
	assert.Equal(t, "chest", row.MuscleGroup)
	assert.Equal(t, 135.0, row.Weight)
	assert.Equal(t, 8, row.Reps)
	require.NotNil(t, row.RIR)
	assert.Equal(t, 2, *row.RIR)
}

func TestCreate_Rejections(t *testing.T) {
	f := newFixture()
	f.create(t)

	_, err := app.Create(context.Background(), f.opts, "me", "Again")
	assert.True(t, models.IsPrecondition(err))

	_, err = app.Create(context.Background(), f.opts, "", "  ")
	assert.True(t, models.IsValidation(err))

	_, err = app.Open(context.Background(), f.opts, "nobody")
	assert.True(t, models.IsPrecondition(err))
}

func TestCreate_GeneratesID(t *testing.T) {
	f := newFixture()
	s, err := app.Create(context.Background(), f.opts, "", "Anon")
	require.NoError(t, err)
	defer s.Close()

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "Anon", s.Name())
	s.View(func(d *models.ProfileData, _ time.Time) {
		assert.Equal(t, app.DefaultWaterGoal, d.Settings.WaterGoal)
		assert.Equal(t, 150, d.RestDefaults.CompoundSec)
	})
}

func TestSaveFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	notifier := notifymocks.NewMockNotifier(ctrl)
	ctx := context.Background()

	store.EXPECT().Get(gomock.Any(), "me").Return(nil, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s, err := app.Create(ctx, app.Options{Store: store, Library: refdata.Default(), Notifier: notifier, Now: newClock().Now}, "me", "Me")
	require.NoError(t, err)
	defer s.Close()

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	notifier.EXPECT().Toast("Save failed")

	_, err = s.AddQuick(ctx, "Snack", models.Macros{Calories: 200})
	require.ErrorContains(t, err, "disk full")
	s.View(func(d *models.ProfileData, _ time.Time) {
		assert.Empty(t, d.DietLog, "failed save leaves no trace in memory")
	})

	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Profile) error {
		assert.Contains(t, string(p.Data), `"label":"Snack"`)
		return nil
	})
	notifier.EXPECT().Toast("Added Snack (200 kcal)")

	_, err = s.AddQuick(ctx, "Snack", models.Macros{Calories: 200})
	require.NoError(t, err)
}

func TestSaveFailureKeepsWorkoutState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	store.EXPECT().Get(gomock.Any(), "me").Return(nil, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3) // create, template, start
	s, err := app.Create(ctx, app.Options{Store: store, Library: refdata.Default(), Now: newClock().Now}, "me", "Me")
	require.NoError(t, err)
	defer s.Close()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("locked"))
	_, err = s.LogSet(ctx, 100, 5, nil)
	require.Error(t, err)

	sum, ok := s.WorkoutSummary()
	require.True(t, ok)
	assert.Zero(t, sum.SetsDone)
	st, _, _ := s.Rest()
	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, s.RestDone(), "no loop for a rolled back rest")
}

func TestRejectedTemplateIsNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	notifier := notifymocks.NewMockNotifier(ctrl)
	ctx := context.Background()

	store.EXPECT().Get(gomock.Any(), "me").Return(nil, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s, err := app.Create(ctx, app.Options{Store: store, Library: refdata.Default(), Notifier: notifier}, "me", "Me")
	require.NoError(t, err)
	defer s.Close()

	notifier.EXPECT().Toast("name: template name is required")
	_, err = s.SaveTemplate(ctx, &templates.Draft{Name: "   ", Items: []models.ExerciseDraftItem{{ExerciseID: "squat"}}})
	assert.True(t, models.IsValidation(err))

	notifier.EXPECT().Toast("items: add at least one exercise")
	_, err = s.SaveTemplate(ctx, &templates.Draft{Name: "Empty"})
	assert.True(t, models.IsValidation(err))
}

func TestLogSet_Validation(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	_, err := s.LogSet(ctx, 100, 5, nil)
	assert.True(t, models.IsPrecondition(err), "no workout in progress")

	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))
	saves := f.store.saveCount()

	_, err = s.LogSet(ctx, -1, 5, nil)
	assert.True(t, models.IsValidation(err))
	_, err = s.LogSet(ctx, 100, 0, nil)
	assert.True(t, models.IsValidation(err))
	_, err = s.LogSet(ctx, 100, 5, intPtr(-1))
	assert.True(t, models.IsValidation(err))

	assert.Equal(t, saves, f.store.saveCount())
	sum, _ := s.WorkoutSummary()
	assert.Zero(t, sum.SetsDone)
}

func TestStartAndDiscardNeedConfirmation(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)

	assert.True(t, models.IsPrecondition(s.StartWorkout(ctx, "Leg Day", false)))

	require.NoError(t, s.StartWorkout(ctx, "push day", false))
	_, err := s.LogSet(ctx, 100, 5, nil)
	require.NoError(t, err)

	err = s.StartWorkout(ctx, "Push Day", false)
	assert.True(t, models.IsPrecondition(err))
	sum, _ := s.WorkoutSummary()
	assert.Equal(t, 1, sum.SetsDone, "unconfirmed start keeps the old workout")

	require.NoError(t, s.StartWorkout(ctx, "Push Day", true))
	sum, _ = s.WorkoutSummary()
	assert.Zero(t, sum.SetsDone)

	_, err = s.LogSet(ctx, 100, 5, nil)
	require.NoError(t, err)
	assert.True(t, models.IsPrecondition(s.DiscardWorkout(ctx, false)))
	require.NoError(t, s.DiscardWorkout(ctx, true))

	_, ok := s.WorkoutSummary()
	assert.False(t, ok)
	assert.Nil(t, s.RestDone())
	assert.Empty(t, f.store.data(t, "me").SetsLog, "discard does not touch the sets log")

	assert.True(t, models.IsPrecondition(s.DiscardWorkout(ctx, true)))
}

func TestNavigationResetsRest(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))

	moved, err := s.Prev(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	_, err = s.LogSet(ctx, 100, 3, nil)
	require.NoError(t, err)
	st, _, _ := s.Rest()
	assert.Equal(t, 210, st.DurationSec)

	moved, err = s.Next(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	st, _, _ = s.Rest()
	assert.Equal(t, models.RestIdle, st.State)
	assert.Equal(t, 90, st.DurationSec, "accessory base rest")
	assert.Nil(t, s.RestDone())

	moved, err = s.Next(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	assert.True(t, models.IsValidation(s.Jump(ctx, 5)))
	require.NoError(t, s.Jump(ctx, 0))
	st, _, _ = s.Rest()
	assert.Equal(t, 150, st.DurationSec)
}

func TestRestControls(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))

	started, err := s.StartRest(ctx)
	require.NoError(t, err)
	assert.True(t, started)
	require.NotNil(t, s.RestDone())

	started, err = s.StartRest(ctx)
	require.NoError(t, err)
	assert.False(t, started, "already running")

	f.clock.Advance(30 * time.Second)
	paused, err := s.PauseRest(ctx)
	require.NoError(t, err)
	assert.True(t, paused)
	assert.Nil(t, s.RestDone(), "pause stops the loop")
	_, remaining, _ := s.Rest()
	assert.Equal(t, 120*time.Second, remaining)

	require.NoError(t, s.AdjustRest(ctx, 15*time.Second))
	st, remaining, _ := s.Rest()
	assert.Equal(t, 165, st.DurationSec)
	assert.Equal(t, 165*time.Second, remaining)

	_, err = s.StartRest(ctx)
	require.NoError(t, err)
	require.NoError(t, s.AdjustRest(ctx, -15*time.Second))
	_, remaining, _ = s.Rest()
	assert.Equal(t, 150*time.Second, remaining)

	skipped, err := s.SkipRest(ctx)
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Nil(t, s.RestDone())

	skipped, err = s.SkipRest(ctx)
	require.NoError(t, err)
	assert.False(t, skipped)

	_, err = s.StartRest(ctx)
	require.NoError(t, err)
	require.NoError(t, s.ResetRest(ctx))
	st, _, _ = s.Rest()
	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, s.RestDone())
}

func TestRestExpiresInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notifymocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Toast("Rest complete").Times(1)
	notifier.EXPECT().Toast(gomock.Any()).AnyTimes()
	notifier.EXPECT().Haptic().Times(2) // set logged, rest over

	f := newFixture()
	f.opts.Notifier = notifier
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))

	_, err := s.LogSet(ctx, 135, 8, nil)
	require.NoError(t, err)
	done := s.RestDone()
	require.NotNil(t, done)

	f.clock.Advance(151 * time.Second)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rest did not expire")
	}

	st, _, _ := s.Rest()
	assert.Equal(t, models.RestIdle, st.State)
	assert.Equal(t, int64(150000), st.RemainingMs)
	assert.Equal(t, models.RestIdle, f.store.data(t, "me").ActiveWorkout.Rest.State, "expiry is persisted")
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	require.NotNil(t, done)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tick loop did not stop")
	}
}

func TestRestExpiryKeepsFinishFromOtherSession(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))
	_, err := s.LogSet(ctx, 135, 8, nil)
	require.NoError(t, err)
	watching := s.RestDone()

	other := f.open(t)
	n, err := other.FinishWorkout(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	f.clock.Advance(151 * time.Second)
	waitDone(t, watching)

	d := f.store.data(t, "me")
	require.Len(t, d.SetsLog, 1, "finished sets stay in the log")
	assert.Nil(t, d.ActiveWorkout)
	_, active := s.WorkoutSummary()
	assert.False(t, active, "the newer profile is adopted")
}

func TestRestExpiryKeepsSetFromOtherSession(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))
	_, err := s.LogSet(ctx, 135, 8, nil)
	require.NoError(t, err)
	watching := s.RestDone()

	f.clock.Advance(30 * time.Second)
	other := f.open(t)
	_, err = other.LogSet(ctx, 135, 7, nil)
	require.NoError(t, err)
	other.Close()

	f.clock.Advance(10 * time.Minute)
	waitDone(t, watching)

	d := f.store.data(t, "me")
	require.NotNil(t, d.ActiveWorkout)
	assert.Len(t, d.ActiveWorkout.Items[0].SetsCompleted, 2)
	assert.Equal(t, models.RestIdle, d.ActiveWorkout.Rest.State, "the newer timer expires too")
	sum, _ := s.WorkoutSummary()
	assert.Equal(t, 2, sum.SetsDone)
}

func TestOpenResumesPersistedTimer(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))
	_, err := s.LogSet(ctx, 135, 8, intPtr(2))
	require.NoError(t, err)
	s.Close()

	f.clock.Advance(40 * time.Second)
	s2 := f.open(t)
	st, remaining, ok := s2.Rest()
	require.True(t, ok)
	assert.Equal(t, models.RestRunning, st.State)
	assert.InDelta(t, 110000, remaining.Milliseconds(), 1000)
	assert.NotNil(t, s2.RestDone())
	s2.Close()

	ctrl := gomock.NewController(t)
	notifier := notifymocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Toast("Rest complete")
	notifier.EXPECT().Haptic()
	f.opts.Notifier = notifier

	f.clock.Advance(10 * time.Minute)
	s3 := f.open(t)
	st, _, _ = s3.Rest()
	assert.Equal(t, models.RestIdle, st.State)
	assert.Nil(t, s3.RestDone())
	assert.Equal(t, models.RestIdle, f.store.data(t, "me").ActiveWorkout.Rest.State)
}

func TestOpenHealsDriftedTotals(t *testing.T) {
	f := newFixture()
	data := models.ProfileData{
		DietLog: map[string]*models.DietDay{
			"2024-05-14": {
				Entries: []models.Entry{{ID: "a", Kind: models.EntryQuick, Macros: models.Macros{Calories: 300, Protein: 20}}},
				Totals:  models.Macros{Calories: 999},
			},
		},
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, f.store.Save(context.Background(), &models.Profile{ID: "me", Name: "Me", Data: raw}))

	s := f.open(t)
	s.View(func(d *models.ProfileData, _ time.Time) {
		assert.Equal(t, models.Macros{Calories: 300, Protein: 20}, d.DietLog["2024-05-14"].Totals)
		assert.Equal(t, 150, d.RestDefaults.CompoundSec, "missing rest defaults are filled in")
	})
	assert.Equal(t, 300, f.store.data(t, "me").DietLog["2024-05-14"].Totals.Calories)
}

func TestDietFlow(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	e, err := s.AddFood(ctx, "chicken-breast", 150, "g")
	require.NoError(t, err)
	assert.Equal(t, models.Macros{Calories: 248, Protein: 47, Carbs: 0, Fat: 5}, e.Macros)

	_, err = s.AddFood(ctx, "unobtainium", 1, "g")
	assert.True(t, models.IsValidation(err))
	_, err = s.AddFood(ctx, "chicken-breast", 0, "g")
	assert.True(t, models.IsValidation(err))

	meal, err := s.SaveMeal(ctx, "Bowl", []diet.MealLine{
		{FoodID: "chicken-breast", Qty: 150, UnitKey: "g"},
		{FoodID: "white-rice", Qty: 1, UnitKey: "cup"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Macros{Calories: 453, Protein: 51, Carbs: 45, Fat: 5}, meal.PerServingTotals)

	again, err := s.SaveMeal(ctx, "bowl", []diet.MealLine{{FoodID: "egg", Qty: 2, UnitKey: "large"}})
	require.NoError(t, err)
	assert.Equal(t, meal.ID, again.ID, "same name replaces the meal")
	_, err = s.SaveMeal(ctx, "Bowl", []diet.MealLine{
		{FoodID: "chicken-breast", Qty: 150, UnitKey: "g"},
		{FoodID: "white-rice", Qty: 1, UnitKey: "cup"},
	})
	require.NoError(t, err)

	m, err := s.AddMeal(ctx, "Bowl", 2)
	require.NoError(t, err)
	assert.Equal(t, models.Macros{Calories: 906, Protein: 102, Carbs: 89, Fat: 12}, m.Macros)

	_, err = s.AddMeal(ctx, "Pizza", 1)
	assert.True(t, models.IsPrecondition(err))

	cups, err := s.AddWater(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cups)
	_, err = s.AddWater(ctx, 0)
	assert.True(t, models.IsValidation(err))

	dash := s.Dashboard(4)
	assert.Equal(t, models.Macros{Calories: 1154, Protein: 149, Carbs: 89, Fat: 17}, dash.Today.Totals)
	assert.Equal(t, 3, dash.Today.Water)
	assert.Equal(t, 1, dash.AvgCaloriesDays)

	require.NoError(t, s.RemoveEntry(ctx, "", e.ID))
	assert.True(t, models.IsPrecondition(s.RemoveEntry(ctx, "", e.ID)))
	assert.True(t, models.IsPrecondition(s.RemoveEntry(ctx, "1999-01-01", "x")))

	saved := f.store.data(t, "me")
	day := saved.DietLog["2024-05-15"]
	require.NotNil(t, day)
	assert.Len(t, day.Entries, 1)
	assert.Equal(t, diet.Sum(day), day.Totals)

	require.NoError(t, s.DeleteMeal(ctx, "bowl"))
	assert.True(t, models.IsPrecondition(s.DeleteMeal(ctx, "bowl")))
}

func TestFavorites(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	fav, err := s.ToggleFavorite(ctx, "oats")
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = s.ToggleFavorite(ctx, "oats")
	require.NoError(t, err)
	assert.False(t, fav)

	_, err = s.ToggleFavorite(ctx, "nope")
	assert.True(t, models.IsValidation(err))
	assert.Empty(t, f.store.data(t, "me").Favorites)
}

func TestTemplateOperations(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()
	tpl := pushDay(t, s)

	cp, err := s.DuplicateTemplate(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day (Copy)", cp.Name)

	edited, err := s.EditTemplate(ctx, cp.ID, func(d *templates.Draft) error {
		d.Name = "Push Day B"
		d.SetSets(0, 5)
		return d.SetRest(1, models.RestModeCustom, 45)
	})
	require.NoError(t, err)
	assert.Equal(t, cp.ID, edited.ID)
	assert.Equal(t, 5, edited.Items[0].Sets)

	orig, ok := s.Template("Push Day")
	require.True(t, ok)
	assert.Equal(t, 3, orig.Items[0].Sets, "duplicate is independent")

	_, err = s.EditTemplate(ctx, cp.ID, func(d *templates.Draft) error {
		return d.SetType(0, "cardio")
	})
	assert.True(t, models.IsValidation(err))

	assert.True(t, models.IsPrecondition(s.DeleteTemplate(ctx, "Push Day B", false)))
	require.NoError(t, s.DeleteTemplate(ctx, "Push Day B", true))
	_, ok = s.Template("Push Day B")
	assert.False(t, ok)
	assert.Len(t, f.store.data(t, "me").Templates, 1)
}

func TestImportTemplate(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	src := &models.TemplateTOML{
		Name: "Legs",
		Exercises: []models.TemplateItemTOML{
			{ID: "squat", Sets: 5},
			{ID: "leg-curl", RestSec: 75},
		},
	}
	tpl, err := s.ImportTemplate(ctx, src, false)
	require.NoError(t, err)
	require.Len(t, tpl.Items, 2)
	assert.Equal(t, 5, tpl.Items[0].Sets)
	require.NotNil(t, tpl.Items[1].RestSec)
	assert.Equal(t, 75, *tpl.Items[1].RestSec)

	_, err = s.ImportTemplate(ctx, src, false)
	assert.True(t, models.IsPrecondition(err))

	src.Exercises = src.Exercises[:1]
	again, err := s.ImportTemplate(ctx, src, true)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, again.ID)
	assert.Len(t, again.Items, 1)

	_, err = s.ImportTemplate(ctx, &models.TemplateTOML{Name: "X", Exercises: []models.TemplateItemTOML{{ID: "nope"}}}, false)
	assert.True(t, models.IsValidation(err))
}

func TestSettingsAndWeight(t *testing.T) {
	f := newFixture()
	s := f.create(t)
	ctx := context.Background()

	assert.True(t, models.IsValidation(s.UpdateSettings(ctx, models.Settings{Name: ""})))
	assert.True(t, models.IsValidation(s.UpdateSettings(ctx, models.Settings{Name: "Me", CalorieGoal: -1})))
	require.NoError(t, s.UpdateSettings(ctx, models.Settings{Name: "Me", CalorieGoal: 2800, WaterGoal: 10}))

	assert.True(t, models.IsValidation(s.SetRestDefaults(ctx, models.RestDefaults{CompoundSec: 10, AccessorySec: 90})))
	require.NoError(t, s.SetRestDefaults(ctx, models.RestDefaults{CompoundSec: 200, AccessorySec: 60}))
	pushDay(t, s)
	require.NoError(t, s.StartWorkout(ctx, "Push Day", false))
	st, _, _ := s.Rest()
	assert.Equal(t, 200, st.DurationSec, "new defaults feed recommendations")

	require.NoError(t, s.LogWeight(ctx, "2024-05-10", 82))
	require.NoError(t, s.LogWeight(ctx, "", 81))
	require.NoError(t, s.LogWeight(ctx, "2024-05-12", 81.5))
	require.NoError(t, s.LogWeight(ctx, "2024-05-12", 81.4))
	assert.True(t, models.IsValidation(s.LogWeight(ctx, "12/05/2024", 80)))
	assert.True(t, models.IsValidation(s.LogWeight(ctx, "", 0)))

	saved := f.store.data(t, "me")
	assert.Equal(t, 2800, saved.Settings.CalorieGoal)

	require.NoError(t, s.UpdateSettings(ctx, models.Settings{Name: "Coach", CalorieGoal: 2800, WaterGoal: 10}))
	row, err := f.store.Get(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, "Coach", row.Name, "profile listing follows the display name")
	assert.Equal(t, "Coach", s.Name())
	assert.Equal(t, []models.WeightEntry{
		{Date: "2024-05-10", Weight: 82},
		{Date: "2024-05-12", Weight: 81.4},
		{Date: "2024-05-15", Weight: 81},
	}, saved.WeightLog)

	dash := s.Dashboard(2)
	assert.True(t, dash.HasWeightDelta)
	assert.InDelta(t, -1, dash.WeightDelta, 0.0001)
	assert.True(t, dash.WorkoutActive)
	assert.Equal(t, []int{0, 0}, dash.WeeklySets)
}
