package templates

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/rest"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

// Save validates the draft and writes it into the list: an existing id is
// overwritten in place, an empty one is appended under a fresh id. On a
// validation error the list is returned untouched.
func Save(list []models.Template, d *Draft) ([]models.Template, models.Template, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return list, models.Template{}, models.Invalid("name", "template name is required")
	}
	if len(d.Items) == 0 {
		return list, models.Template{}, models.Invalid("items", "add at least one exercise")
	}

	tpl := models.Template{ID: d.ID, Name: name, Notes: strings.TrimSpace(d.Notes), Items: d.Items}.Clone()
	for i := range tpl.Items {
		normalize(&tpl.Items[i])
	}

	if tpl.ID != "" {
		for i := range list {
			if list[i].ID == tpl.ID {
				list[i] = tpl
				return list, tpl, nil
			}
		}
	}
	tpl.ID = uuid.New().String()
	return append(list, tpl), tpl, nil
}

// normalize applies the draft editing rules to an item that may have been
// built by hand. A custom rest without seconds falls back to auto.
func normalize(it *models.ExerciseDraftItem) {
	it.Sets = utils.Clamp(it.Sets, MinSets, MaxSets)
	if !models.IsValidExerciseType(it.Type) {
		it.Type = models.ExerciseAccessory
	}
	if it.RestMode == models.RestModeCustom && it.RestSec != nil {
		v := utils.Clamp(*it.RestSec, rest.MinSec, rest.MaxSec)
		it.RestSec = &v
		return
	}
	it.RestMode = models.RestModeAuto
	it.RestSec = nil
}

// Duplicate appends a deep copy of the template under a new id.
func Duplicate(list []models.Template, id string) ([]models.Template, models.Template, error) {
	src, ok := Find(list, id)
	if !ok {
		return list, models.Template{}, models.Precondition("template %s not found", id)
	}
	cp := src.Clone()
	cp.ID = uuid.New().String()
	cp.Name = fmt.Sprintf("%s (Copy)", src.Name)
	return append(list, cp), cp, nil
}

// Delete removes the template. Workouts already started from it are unaffected.
func Delete(list []models.Template, id string, confirmed bool) ([]models.Template, error) {
	if !confirmed {
		return list, models.Precondition("deleting a template needs confirmation")
	}
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return list, models.Precondition("template %s not found", id)
}

// Find looks a template up by id or, failing that, by case-insensitive name.
func Find(list []models.Template, ref string) (models.Template, bool) {
	for _, t := range list {
		if t.ID == ref {
			return t, true
		}
	}
	for _, t := range list {
		if strings.EqualFold(t.Name, ref) {
			return t, true
		}
	}
	return models.Template{}, false
}
