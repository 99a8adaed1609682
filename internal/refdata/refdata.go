// Package refdata holds the read-only exercise library and food database.
package refdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironlog/internal/models"
	"gopkg.in/yaml.v3"
)

// Library is a lookup table over exercises and foods.
type Library struct {
	exercises map[string]models.Exercise
	foods     map[string]models.Food
}

// Default returns the built-in library.
func Default() *Library {
	l := &Library{
		exercises: make(map[string]models.Exercise),
		foods:     make(map[string]models.Food),
	}
	l.merge(models.ReferenceImport{Exercises: defaultExercises(), Foods: defaultFoods()})
	return l
}

// Load starts from the built-in library and merges every file given; entries
// with an existing id replace the built-in ones. Files ending in .yaml or
// .yml are parsed as YAML, anything else as TOML.
func Load(paths ...string) (*Library, error) {
	l := Default()
	for _, p := range paths {
		if p == "" {
			continue
		}
		imp, err := readImport(p)
		if err != nil {
			return nil, err
		}
		if err := validate(imp); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		l.merge(*imp)
	}
	return l, nil
}

func readImport(path string) (*models.ReferenceImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	var imp models.ReferenceImport
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &imp); err != nil {
			return nil, fmt.Errorf("invalid YAML format in %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &imp); err != nil {
			return nil, fmt.Errorf("invalid TOML format in %s: %w", path, err)
		}
	}
	return &imp, nil
}

func validate(imp *models.ReferenceImport) error {
	for _, ex := range imp.Exercises {
		if ex.ID == "" || ex.Name == "" {
			return fmt.Errorf("exercise needs an id and a name")
		}
		if !models.IsValidExerciseType(ex.Type) {
			return fmt.Errorf("exercise %s: type must be compound or accessory", ex.ID)
		}
	}
	for _, f := range imp.Foods {
		if f.ID == "" || f.Name == "" {
			return fmt.Errorf("food needs an id and a name")
		}
		if f.ReferenceGrams <= 0 {
			return fmt.Errorf("food %s: reference_grams must be positive", f.ID)
		}
		for _, u := range f.Units {
			if u.Key == "" || u.GramsPerUnit <= 0 {
				return fmt.Errorf("food %s: every unit needs a key and positive grams_per_unit", f.ID)
			}
		}
	}
	return nil
}

func (l *Library) merge(imp models.ReferenceImport) {
	for _, ex := range imp.Exercises {
		l.exercises[ex.ID] = ex
	}
	for _, f := range imp.Foods {
		if _, ok := f.Unit("g"); !ok {
			f.Units = append(withGrams(), f.Units...)
		}
		l.foods[f.ID] = f
	}
}

func (l *Library) Exercise(id string) (models.Exercise, bool) {
	ex, ok := l.exercises[id]
	return ex, ok
}

// Food returns a copy; callers may not modify the library through it.
func (l *Library) Food(id string) (models.Food, bool) {
	f, ok := l.foods[id]
	if !ok {
		return models.Food{}, false
	}
	f.Units = append([]models.FoodUnit(nil), f.Units...)
	return f, true
}

// Exercises returns the library sorted by muscle group, then name.
func (l *Library) Exercises() []models.Exercise {
	out := make([]models.Exercise, 0, len(l.exercises))
	for _, ex := range l.exercises {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MuscleGroup != out[j].MuscleGroup {
			return out[i].MuscleGroup < out[j].MuscleGroup
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Foods returns the food table sorted by name.
func (l *Library) Foods() []models.Food {
	out := make([]models.Food, 0, len(l.foods))
	for _, f := range l.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
