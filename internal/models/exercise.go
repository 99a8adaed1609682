package models

const (
	ExerciseCompound  = "compound"
	ExerciseAccessory = "accessory"
)

// Exercise is an entry of the static exercise library.
type Exercise struct {
	ID          string `json:"id" toml:"id" yaml:"id"`
	Name        string `json:"name" toml:"name" yaml:"name"`
	MuscleGroup string `json:"muscleGroup" toml:"muscle_group" yaml:"muscle_group"`
	Type        string `json:"type" toml:"type" yaml:"type"` // compound or accessory.
}

// Nutrients holds unrounded macro values, normalized to a food's reference weight.
type Nutrients struct {
	Calories float64 `json:"calories" toml:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" toml:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" toml:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" toml:"fat" yaml:"fat"`
}

type FoodUnit struct {
	Key          string  `json:"key" toml:"key" yaml:"key"`
	Label        string  `json:"label" toml:"label" yaml:"label"`
	GramsPerUnit float64 `json:"gramsPerUnit" toml:"grams_per_unit" yaml:"grams_per_unit"`
}

type Food struct {
	ID                 string     `json:"id" toml:"id" yaml:"id"`
	Name               string     `json:"name" toml:"name" yaml:"name"`
	ReferenceGrams     float64    `json:"referenceGrams" toml:"reference_grams" yaml:"reference_grams"`
	PerReferenceMacros Nutrients  `json:"perReferenceMacros" toml:"per_reference" yaml:"per_reference"`
	Units              []FoodUnit `json:"units" toml:"unit" yaml:"units"`
}

// Unit returns the unit with the given key.
func (f Food) Unit(key string) (FoodUnit, bool) {
	for _, u := range f.Units {
		if u.Key == key {
			return u, true
		}
	}
	return FoodUnit{}, false
}

func IsValidExerciseType(t string) bool {
	return t == ExerciseCompound || t == ExerciseAccessory
}

//
// For TOML/YAML parsing only
//

type ReferenceImport struct {
	Exercises []Exercise `toml:"exercise" yaml:"exercises"`
	Foods     []Food     `toml:"food" yaml:"foods"`
}
