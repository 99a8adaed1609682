package models

const (
	RestModeAuto   = "auto"
	RestModeCustom = "custom"
)

// ExerciseDraftItem is one prescribed exercise of a template.
// RestSec is set only when RestMode is custom.
type ExerciseDraftItem struct {
	ExerciseID  string `json:"exerciseId"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
	Type        string `json:"type"`
	RestMode    string `json:"restMode"`
	RestSec     *int   `json:"restSec,omitempty"`
}

type Template struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Notes string              `json:"notes"`
	Items []ExerciseDraftItem `json:"items"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	c := t
	c.Items = make([]ExerciseDraftItem, len(t.Items))
	for i, it := range t.Items {
		if it.RestSec != nil {
			sec := *it.RestSec
			it.RestSec = &sec
		}
		c.Items[i] = it
	}
	return c
}

//
// For TOML parsing only
//

type TemplateTOML struct {
	Name      string             `toml:"name"`
	Notes     string             `toml:"notes"`
	Exercises []TemplateItemTOML `toml:"exercise"`
}

type TemplateItemTOML struct {
	ID      string `toml:"id"`
	Sets    int    `toml:"sets"`
	Type    string `toml:"type,omitempty"`
	RestSec int    `toml:"rest_sec,omitempty"` // Zero keeps automatic rest.
}
