// Package diet keeps the per-day food log and its running macro totals.
//
// Macros are rounded per entry when the entry is inserted, and the day totals
// are the plain sum of those rounded values. Small drift against an unrounded
// sum is expected.
package diet

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironlog/internal/models"
)

// Scale converts per-reference nutrients to rounded macros for the given grams.
func Scale(per models.Nutrients, referenceGrams, grams float64) models.Macros {
	if referenceGrams <= 0 {
		return models.Macros{}
	}
	ratio := grams / referenceGrams
	return models.Macros{
		Calories: round(per.Calories * ratio),
		Protein:  round(per.Protein * ratio),
		Carbs:    round(per.Carbs * ratio),
		Fat:      round(per.Fat * ratio),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AddFood logs qty of the given unit of food.
func AddFood(day *models.DietDay, food models.Food, qty float64, unitKey string, now time.Time) (models.Entry, error) {
	if !validAmount(qty) {
		return models.Entry{}, models.Invalid("qty", "must be greater than 0")
	}
	unit, ok := food.Unit(unitKey)
	if !ok {
		return models.Entry{}, models.Invalid("unit", "%q is not a unit of %s", unitKey, food.Name)
	}
	if food.ReferenceGrams <= 0 {
		return models.Entry{}, models.Precondition("food %s has no reference weight", food.Name)
	}

	grams := qty * unit.GramsPerUnit
	entry := models.Entry{
		ID:     uuid.New().String(),
		Kind:   models.EntryFood,
		At:     now.UTC(),
		Macros: Scale(food.PerReferenceMacros, food.ReferenceGrams, grams),
		Food: &models.FoodEntry{
			FoodID: food.ID,
			Name:   food.Name,
			Qty:    qty,
			Unit:   unit.Key,
			Grams:  grams,
		},
	}
	insert(day, entry)
	return entry, nil
}

// AddMeal logs servings of a saved meal. Component macros come from the
// meal's frozen snapshots, never from the live food table.
func AddMeal(day *models.DietDay, meal models.Meal, servings float64, now time.Time) (models.Entry, error) {
	if !validAmount(servings) {
		return models.Entry{}, models.Invalid("servings", "must be greater than 0")
	}
	if len(meal.Items) == 0 {
		return models.Entry{}, models.Precondition("meal %q has no items", meal.Name)
	}

	me := &models.MealEntry{
		MealID:     meal.ID,
		Name:       meal.Name,
		Servings:   servings,
		Components: make([]models.ComponentSnapshot, 0, len(meal.Items)),
	}
	var total models.Macros
	for _, it := range meal.Items {
		grams := it.Grams * servings
		m := Scale(it.PerRefSnapshot.Macros, it.PerRefSnapshot.ReferenceGrams, grams)
		me.Components = append(me.Components, models.ComponentSnapshot{
			FoodID: it.FoodID,
			Name:   it.Name,
			Qty:    it.Qty * servings,
			Unit:   it.UnitKey,
			Grams:  grams,
			Macros: m,
		})
		total = total.Add(m)
	}

	entry := models.Entry{
		ID:     uuid.New().String(),
		Kind:   models.EntryMeal,
		At:     now.UTC(),
		Macros: total,
		Meal:   me,
	}
	insert(day, entry)
	return entry, nil
}

// AddQuick logs directly typed macros.
func AddQuick(day *models.DietDay, label string, m models.Macros, now time.Time) (models.Entry, error) {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return models.Entry{}, models.Invalid("macros", "must not be negative")
	}
	if m == (models.Macros{}) {
		return models.Entry{}, models.Invalid("macros", "at least one value is required")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Quick add"
	}

	entry := models.Entry{
		ID:     uuid.New().String(),
		Kind:   models.EntryQuick,
		At:     now.UTC(),
		Macros: m,
		Quick:  &models.QuickEntry{Label: label},
	}
	insert(day, entry)
	return entry, nil
}

// RemoveEntry deletes an entry and takes its macros off the totals.
func RemoveEntry(day *models.DietDay, id string) (models.Entry, error) {
	for i, e := range day.Entries {
		if e.ID != id {
			continue
		}
		day.Entries = append(day.Entries[:i], day.Entries[i+1:]...)
		day.Totals = day.Totals.Sub(e.Macros)
		return e, nil
	}
	return models.Entry{}, models.Precondition("entry %s not found", id)
}

// AddWater adds cups of water to the day; negative values undo, down to zero.
func AddWater(day *models.DietDay, cups int) int {
	day.Water = max(0, day.Water+cups)
	return day.Water
}

// Sum returns the element-wise sum of all entry macros.
func Sum(day *models.DietDay) models.Macros {
	var m models.Macros
	for _, e := range day.Entries {
		m = m.Add(e.Macros)
	}
	return m
}

// Verify reports whether the running totals match the entries.
func Verify(day *models.DietDay) bool {
	return day.Totals == Sum(day)
}

// Recompute rebuilds the totals from the entries and reports whether they had drifted.
func Recompute(day *models.DietDay) bool {
	sum := Sum(day)
	drifted := day.Totals != sum
	day.Totals = sum
	return drifted
}

func insert(day *models.DietDay, e models.Entry) {
	day.Entries = append(day.Entries, e)
	day.Totals = day.Totals.Add(e.Macros)
}
