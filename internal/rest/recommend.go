package rest

import (
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

const (
	heavyBonusSec = 60
	lightCutSec   = 30
)

// Target describes what the recommendation needs to know about an exercise.
type Target struct {
	Type          string
	RestMode      string
	CustomRestSec *int
}

func TargetOf(item models.ActiveWorkoutItem) Target {
	return Target{Type: item.Type, RestMode: item.RestMode, CustomRestSec: item.CustomRestSec}
}

// Recommend returns the rest duration in seconds for the exercise, biased by
// the set that was just performed when one is given.
func Recommend(t Target, prior *models.CompletedSet, cfg models.RestDefaults) int {
	base := cfg.AccessorySec
	if t.Type == models.ExerciseCompound {
		base = cfg.CompoundSec
	}
	if t.RestMode == models.RestModeCustom && t.CustomRestSec != nil {
		base = *t.CustomRestSec
	}

	if cfg.AutoAdjust && prior != nil {
		switch {
		case isHeavy(*prior):
			base += heavyBonusSec
		case isLight(*prior):
			base -= lightCutSec
		}
	}

	return utils.Clamp(base, MinSec, MaxSec)
}

func isHeavy(s models.CompletedSet) bool {
	return s.Reps <= 5 || (s.RIR != nil && *s.RIR <= 1)
}

func isLight(s models.CompletedSet) bool {
	return s.Reps >= 13 || (s.RIR != nil && *s.RIR >= 4)
}
