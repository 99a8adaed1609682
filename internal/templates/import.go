package templates

import (
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/models"
)

// ExerciseLookup resolves an exercise id against the reference library.
type ExerciseLookup func(id string) (models.Exercise, bool)

// DraftFromTOML replays a TOML-authored template through the draft builder, so
// imported templates obey the same dedup and clamping rules as edited ones.
func DraftFromTOML(src *models.TemplateTOML, lookup ExerciseLookup) (*Draft, error) {
	d := &Draft{Name: src.Name, Notes: src.Notes}
	for _, ex := range src.Exercises {
		ref, ok := lookup(ex.ID)
		if !ok {
			return nil, models.Invalid("exercise", "unknown exercise %q", ex.ID)
		}
		if !d.AddExercise(ref) {
			continue
		}
		i := len(d.Items) - 1
		if ex.Sets != 0 {
			d.SetSets(i, ex.Sets)
		}
		if ex.Type != "" {
			if err := d.SetType(i, ex.Type); err != nil {
				return nil, fmt.Errorf("exercise %s: %w", ex.ID, err)
			}
		}
		if ex.RestSec > 0 {
			if err := d.SetRest(i, models.RestModeCustom, ex.RestSec); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
