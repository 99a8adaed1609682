// Package app owns a loaded profile and applies every user operation to it:
// validate, mutate, flush the whole profile, then notify. Operations and rest
// timer ticks are serialized through a single lock.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironlog/internal/diet"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/notify"
	"github.com/misterclayt0n/ironlog/internal/rest"
	"github.com/misterclayt0n/ironlog/internal/workout"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCalorieGoal = 2000
	DefaultWaterGoal   = 8

	// expiryFlushTimeout bounds the save done from the tick loop, which has
	// no caller context.
	expiryFlushTimeout = 10 * time.Second
)

type Options struct {
	Store    Store
	Library  Library
	Notifier notify.Notifier

	// RestDefaults seeds new profiles and profiles saved without rest settings.
	RestDefaults models.RestDefaults

	Now          func() time.Time
	TickInterval time.Duration
}

func (o *Options) fill() {
	if o.Notifier == nil {
		o.Notifier = notify.Discard{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.RestDefaults == (models.RestDefaults{}) {
		o.RestDefaults = models.RestDefaults{CompoundSec: 150, AccessorySec: 90, AutoAdjust: true}
	}
}

// reject reports a refused operation to the user before returning it.
func (o *Options) reject(err error) error {
	o.Notifier.Toast(err.Error())
	return err
}

type Session struct {
	store    Store
	lib      Library
	notifier notify.Notifier
	now      func() time.Time

	// sem is a one-slot lock. Unlike a mutex it can be acquired in a select,
	// which lets a pending tick give up when the loop is being stopped.
	sem  chan struct{}
	loop *rest.Loop

	profile models.Profile
	data    *models.ProfileData
	engine  *workout.Engine
}

// Create stores a new empty profile and opens a session on it. An empty id
// gets a generated one.
func Create(ctx context.Context, opts Options, id, name string) (*Session, error) {
	opts.fill()
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, opts.reject(models.Invalid("name", "profile name is required"))
	}
	if id == "" {
		id = uuid.New().String()
	}

	existing, err := opts.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, opts.reject(models.Precondition("profile %s already exists", id))
	}

	data := &models.ProfileData{
		Settings: models.Settings{
			Name:        name,
			CalorieGoal: DefaultCalorieGoal,
			WaterGoal:   DefaultWaterGoal,
		},
		RestDefaults: opts.RestDefaults,
	}
	s := newSession(opts, models.Profile{ID: id, Name: name}, data)
	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	logrus.WithField("profile", id).Info("profile created")
	return s, nil
}

// Open loads an existing profile. A persisted running rest timer is resumed
// against the wall clock; if it ran out while the app was closed the expiry
// is reported and flushed right away.
func Open(ctx context.Context, opts Options, id string) (*Session, error) {
	opts.fill()
	p, err := opts.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, opts.reject(models.Precondition("profile %s not found", id))
	}

	data, err := decodeData(p, opts.RestDefaults)
	if err != nil {
		return nil, err
	}

	s := newSession(opts, models.Profile{ID: p.ID, Name: p.Name, Data: p.Data}, data)
	dirty := s.heal()

	expired := false
	if w := data.ActiveWorkout; w != nil {
		expired = rest.Resume(&w.Rest, s.now())
		dirty = dirty || expired
	}
	if dirty {
		if err := s.flushLocked(ctx); err != nil {
			return nil, err
		}
	}
	if expired {
		s.notifier.Toast("Rest complete")
		s.notifier.Haptic()
	}
	s.syncLoopLocked()
	return s, nil
}

func decodeData(p *models.Profile, defaults models.RestDefaults) (*models.ProfileData, error) {
	data := &models.ProfileData{}
	if len(p.Data) > 0 {
		if err := json.Unmarshal(p.Data, data); err != nil {
			return nil, fmt.Errorf("failed to decode profile %s: %w", p.ID, err)
		}
	}
	if data.RestDefaults == (models.RestDefaults{}) {
		data.RestDefaults = defaults
	}
	return data, nil
}

func newSession(opts Options, p models.Profile, data *models.ProfileData) *Session {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Session{
		store:    opts.Store,
		lib:      opts.Library,
		notifier: opts.Notifier,
		now:      opts.Now,
		sem:      make(chan struct{}, 1),
		loop:     rest.NewLoop(interval),
		profile:  p,
		data:     data,
		engine:   workout.NewEngine(data.RestDefaults),
	}
}

// heal repairs diet days whose stored totals drifted from their entries.
func (s *Session) heal() bool {
	healed := false
	for key, day := range s.data.DietLog {
		if day == nil {
			delete(s.data.DietLog, key)
			continue
		}
		if diet.Recompute(day) {
			logrus.WithField("day", key).Warn("diet totals did not match entries, recomputed")
			healed = true
		}
	}
	return healed
}

func (s *Session) ID() string { return s.profile.ID }

// Name is the stored profile name, kept in step with the display name setting.
func (s *Session) Name() string {
	s.lock()
	defer s.unlock()
	return s.profile.Name
}

// Close stops the tick loop. The profile is already persisted.
func (s *Session) Close() {
	s.loop.Stop()
}

// View runs fn with the current profile data under the session lock. fn must
// not keep references to the data or call back into the session.
func (s *Session) View(fn func(d *models.ProfileData, now time.Time)) {
	s.lock()
	defer s.unlock()
	fn(s.data, s.now())
}

// RestDone returns a channel closed when the running rest timer stops ticking,
// or nil when no timer is running.
func (s *Session) RestDone() <-chan struct{} {
	return s.loop.Done()
}

func (s *Session) lock()   { s.sem <- struct{}{} }
func (s *Session) unlock() { <-s.sem }

// mutate applies op under the lock. On any failure the data is restored to
// its state before the call. The message returned by op is shown only after
// the profile was saved.
func (s *Session) mutate(ctx context.Context, name string, op func(d *models.ProfileData, now time.Time) (string, error)) error {
	s.lock()
	defer s.unlock()
	defer s.syncLoopLocked()

	before, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to snapshot profile: %w", err)
	}

	msg, err := op(s.data, s.now())
	if err != nil {
		s.restoreLocked(before)
		logrus.WithError(err).WithField("op", name).Debug("operation rejected")
		s.notifier.Toast(err.Error())
		return err
	}

	if err := s.flushLocked(ctx); err != nil {
		s.restoreLocked(before)
		logrus.WithError(err).WithField("op", name).Error("save failed, changes rolled back")
		s.notifier.Toast("Save failed")
		return err
	}

	logrus.WithFields(logrus.Fields{"op": name, "profile": s.profile.ID}).Debug("saved")
	if msg != "" {
		s.notifier.Toast(msg)
	}
	return nil
}

func (s *Session) flushLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	p := s.profile
	p.Data = raw
	if name := strings.TrimSpace(s.data.Settings.Name); name != "" {
		p.Name = name
	}
	if err := s.store.Save(ctx, &p); err != nil {
		return err
	}
	s.profile = p
	return nil
}

func (s *Session) restoreLocked(before []byte) {
	restored := &models.ProfileData{}
	if err := json.Unmarshal(before, restored); err != nil {
		// Cannot happen for bytes produced by json.Marshal of the same type.
		logrus.WithError(err).Error("failed to restore profile snapshot")
		return
	}
	s.data = restored
	s.engine = workout.NewEngine(restored.RestDefaults)
}

// syncLoopLocked keeps exactly one tick loop alive while the rest timer runs.
func (s *Session) syncLoopLocked() {
	if w := s.data.ActiveWorkout; w != nil && w.Rest.State == models.RestRunning {
		s.loop.Start(s.tick)
		return
	}
	s.loop.Stop()
}

func (s *Session) tick(quit <-chan struct{}) bool {
	select {
	case <-quit:
		return false
	case s.sem <- struct{}{}:
	}
	defer s.unlock()

	w := s.data.ActiveWorkout
	if w == nil || w.Rest.State != models.RestRunning || w.Rest.EndAt == nil {
		return false
	}
	workoutID, endAt := w.ID, *w.Rest.EndAt
	if !rest.Tick(&w.Rest, s.now()) {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), expiryFlushTimeout)
	defer cancel()

	// Another process may have saved the profile since it was loaded. The
	// expiry is only written over the timer this session started from.
	stored, err := s.store.Get(ctx, s.profile.ID)
	switch {
	case err != nil:
		// Left running in storage, the next Open expires it.
		logrus.WithError(err).Error("failed to reload profile on rest expiry")
	case stored == nil:
		logrus.WithField("profile", s.profile.ID).Warn("profile deleted while resting")
		return false
	case !sameRest(stored, s.profile.Data, workoutID, endAt):
		return s.adoptLocked(stored)
	default:
		if err := s.flushLocked(ctx); err != nil {
			logrus.WithError(err).Error("failed to save expired rest timer")
			s.notifier.Toast("Save failed")
		}
	}
	s.notifier.Toast("Rest complete")
	s.notifier.Haptic()
	return false
}

// sameRest reports whether the stored profile still holds the running timer
// with the given deadline. Unchanged bytes match without decoding.
func sameRest(stored *models.Profile, loaded json.RawMessage, workoutID string, endAt time.Time) bool {
	if bytes.Equal(stored.Data, loaded) {
		return true
	}
	var d models.ProfileData
	if err := json.Unmarshal(stored.Data, &d); err != nil {
		return false
	}
	w := d.ActiveWorkout
	return w != nil && w.ID == workoutID &&
		w.Rest.State == models.RestRunning && w.Rest.EndAt != nil && w.Rest.EndAt.Equal(endAt)
}

// adoptLocked replaces the in-memory profile with a newer stored one and
// reports whether its rest timer still needs ticking.
func (s *Session) adoptLocked(stored *models.Profile) bool {
	data, err := decodeData(stored, s.data.RestDefaults)
	if err != nil {
		logrus.WithError(err).Error("failed to adopt newer profile")
		return false
	}
	logrus.WithField("profile", stored.ID).Info("profile changed elsewhere, reloaded")
	s.profile = models.Profile{ID: stored.ID, Name: stored.Name, Data: stored.Data}
	s.data = data
	s.engine = workout.NewEngine(data.RestDefaults)
	w := data.ActiveWorkout
	return w != nil && w.Rest.State == models.RestRunning && w.Rest.EndAt != nil
}
