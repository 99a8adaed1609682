package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	l := Default()

	bench, ok := l.Exercise("bench-press")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", bench.Name)
	assert.Equal(t, "chest", bench.MuscleGroup)
	assert.Equal(t, models.ExerciseCompound, bench.Type)

	rice, ok := l.Food("white-rice")
	require.True(t, ok)
	cup, ok := rice.Unit("cup")
	require.True(t, ok)
	assert.Equal(t, 158.0, cup.GramsPerUnit)

	for _, f := range l.Foods() {
		_, ok := f.Unit("g")
		assert.True(t, ok, "food %s lacks a gram unit", f.ID)
	}

	_, ok = l.Exercise("nope")
	assert.False(t, ok)
}

func TestExercisesSorted(t *testing.T) {
	list := Default().Exercises()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.MuscleGroup == cur.MuscleGroup {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.MuscleGroup, cur.MuscleGroup)
		}
	}
}

func TestFoodReturnsCopy(t *testing.T) {
	l := Default()
	f, _ := l.Food("egg")
	f.Units[0].GramsPerUnit = 999

	again, _ := l.Food("egg")
	assert.Equal(t, 1.0, again.Units[0].GramsPerUnit)
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, "extra.toml", `
[[exercise]]
id = "hip-thrust"
name = "Hip Thrust"
muscle_group = "glutes"
type = "compound"

[[food]]
id = "white-rice"
name = "Jasmine Rice"
reference_grams = 100
per_reference = { calories = 129, protein = 2.9, carbs = 28, fat = 0.2 }

  [[food.unit]]
  key = "bowl"
  label = "bowl"
  grams_per_unit = 200
`)
	l, err := Load(p)
	require.NoError(t, err)

	ex, ok := l.Exercise("hip-thrust")
	require.True(t, ok)
	assert.Equal(t, "glutes", ex.MuscleGroup)

	rice, ok := l.Food("white-rice")
	require.True(t, ok)
	assert.Equal(t, "Jasmine Rice", rice.Name)
	_, ok = rice.Unit("cup")
	assert.False(t, ok, "override replaces the built-in entry")
	_, ok = rice.Unit("g")
	assert.True(t, ok)
	_, ok = rice.Unit("bowl")
	assert.True(t, ok)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "extra.yaml", `
foods:
  - id: tofu
    name: Tofu
    reference_grams: 100
    per_reference: {calories: 76, protein: 8, carbs: 1.9, fat: 4.8}
    units:
      - {key: block, label: block, grams_per_unit: 350}
`)
	l, err := Load(p)
	require.NoError(t, err)

	tofu, ok := l.Food("tofu")
	require.True(t, ok)
	assert.Equal(t, 76.0, tofu.PerReferenceMacros.Calories)
	assert.Len(t, tofu.Units, 2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.toml", `
[[exercise]]
id = "x"
name = "X"
type = "cardio"
`)
	_, err = Load(bad)
	assert.ErrorContains(t, err, "compound or accessory")

	zero := writeFile(t, "zero.yaml", `
foods:
  - {id: air, name: Air, reference_grams: 0}
`)
	_, err = Load(zero)
	assert.ErrorContains(t, err, "reference_grams")

	l, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, l.Foods())
}
