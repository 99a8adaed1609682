// Package templates builds and stores reusable workout prescriptions.
package templates

import (
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

const (
	MinSets     = 1
	MaxSets     = 10
	DefaultSets = 3
)

// Draft is a template being edited. Nothing is persisted until Save.
type Draft struct {
	ID    string
	Name  string
	Notes string
	Items []models.ExerciseDraftItem
}

// DraftFrom opens a saved template for editing.
func DraftFrom(tpl models.Template) *Draft {
	c := tpl.Clone()
	return &Draft{ID: c.ID, Name: c.Name, Notes: c.Notes, Items: c.Items}
}

// AddExercise appends the exercise with default prescription. Adding an
// exercise that is already in the draft does nothing and reports false.
func (d *Draft) AddExercise(ex models.Exercise) bool {
	if d.indexOf(ex.ID) >= 0 {
		return false
	}
	typ := ex.Type
	if !models.IsValidExerciseType(typ) {
		typ = models.ExerciseAccessory
	}
	d.Items = append(d.Items, models.ExerciseDraftItem{
		ExerciseID:  ex.ID,
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
		Sets:        DefaultSets,
		Type:        typ,
		RestMode:    models.RestModeAuto,
	})
	return true
}

// MoveUp swaps the item with its predecessor. No-op at the top.
func (d *Draft) MoveUp(i int) bool {
	if i <= 0 || i >= len(d.Items) {
		return false
	}
	d.Items[i-1], d.Items[i] = d.Items[i], d.Items[i-1]
	return true
}

// MoveDown swaps the item with its successor. No-op at the bottom.
func (d *Draft) MoveDown(i int) bool {
	if i < 0 || i >= len(d.Items)-1 {
		return false
	}
	d.Items[i+1], d.Items[i] = d.Items[i], d.Items[i+1]
	return true
}

func (d *Draft) Remove(i int) bool {
	if i < 0 || i >= len(d.Items) {
		return false
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return true
}

// SetSets stores the set count clamped to [MinSets, MaxSets].
func (d *Draft) SetSets(i, sets int) bool {
	if i < 0 || i >= len(d.Items) {
		return false
	}
	d.Items[i].Sets = utils.Clamp(sets, MinSets, MaxSets)
	return true
}

func (d *Draft) SetType(i int, typ string) error {
	if i < 0 || i >= len(d.Items) {
		return models.Invalid("index", "exercise %d does not exist", i+1)
	}
	if !models.IsValidExerciseType(typ) {
		return models.Invalid("type", "must be %s or %s", models.ExerciseCompound, models.ExerciseAccessory)
	}
	d.Items[i].Type = typ
	return nil
}

// SetRest switches an item between automatic and custom rest. Custom seconds
// are clamped to the rest timer bounds; auto drops them.
func (d *Draft) SetRest(i int, mode string, sec int) error {
	if i < 0 || i >= len(d.Items) {
		return models.Invalid("index", "exercise %d does not exist", i+1)
	}
	switch mode {
	case models.RestModeAuto:
		d.Items[i].RestMode = models.RestModeAuto
		d.Items[i].RestSec = nil
	case models.RestModeCustom:
		v := utils.Clamp(sec, rest.MinSec, rest.MaxSec)
		d.Items[i].RestMode = models.RestModeCustom
		d.Items[i].RestSec = &v
	default:
		return models.Invalid("rest", "mode must be %s or %s", models.RestModeAuto, models.RestModeCustom)
	}
	return nil
}

func (d *Draft) indexOf(exerciseID string) int {
	for i, it := range d.Items {
		if it.ExerciseID == exerciseID {
			return i
		}
	}
	return -1
}
