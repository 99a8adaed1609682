package diet

import (
	"strings"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironlog/internal/models"
)

// MealLine is one requested component of a meal being built.
type MealLine struct {
	FoodID  string
	Qty     float64
	UnitKey string
}

// FoodLookup resolves a food id against the reference table.
type FoodLookup func(id string) (models.Food, bool)

// BuildMeal resolves each line against the current food table and freezes the
// food's per-reference nutrition into the meal.
func BuildMeal(name string, lines []MealLine, lookup FoodLookup) (models.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Meal{}, models.Invalid("name", "meal name is required")
	}
	if len(lines) == 0 {
		return models.Meal{}, models.Invalid("items", "a meal needs at least one food")
	}

	meal := models.Meal{Name: name}
	for _, l := range lines {
		food, ok := lookup(l.FoodID)
		if !ok {
			return models.Meal{}, models.Invalid("food", "unknown food %q", l.FoodID)
		}
		if !validAmount(l.Qty) {
			return models.Meal{}, models.Invalid("qty", "must be greater than 0 for %s", food.Name)
		}
		unit, ok := food.Unit(l.UnitKey)
		if !ok {
			return models.Meal{}, models.Invalid("unit", "%q is not a unit of %s", l.UnitKey, food.Name)
		}

		meal.Items = append(meal.Items, models.MealItem{
			FoodID:  food.ID,
			Name:    food.Name,
			Qty:     l.Qty,
			UnitKey: unit.Key,
			Grams:   l.Qty * unit.GramsPerUnit,
			PerRefSnapshot: models.PerRefSnapshot{
				ReferenceGrams: food.ReferenceGrams,
				Macros:         food.PerReferenceMacros,
			},
		})
	}
	meal.PerServingTotals = perServing(meal.Items)
	return meal, nil
}

func perServing(items []models.MealItem) models.Macros {
	var m models.Macros
	for _, it := range items {
		m = m.Add(Scale(it.PerRefSnapshot.Macros, it.PerRefSnapshot.ReferenceGrams, it.Grams))
	}
	return m
}

// SaveMeal overwrites a meal with the same id, or appends it under a fresh id.
func SaveMeal(meals []models.Meal, meal models.Meal) ([]models.Meal, models.Meal) {
	if meal.ID != "" {
		for i := range meals {
			if meals[i].ID == meal.ID {
				meals[i] = meal
				return meals, meal
			}
		}
	}
	meal.ID = uuid.New().String()
	return append(meals, meal), meal
}

// DeleteMeal removes a saved meal. Already logged entries keep their snapshot.
func DeleteMeal(meals []models.Meal, id string) ([]models.Meal, error) {
	for i := range meals {
		if meals[i].ID == id {
			return append(meals[:i], meals[i+1:]...), nil
		}
	}
	return meals, models.Precondition("meal %s not found", id)
}

// FindMeal looks a meal up by id or, failing that, by case-insensitive name.
func FindMeal(meals []models.Meal, ref string) (models.Meal, bool) {
	for _, m := range meals {
		if m.ID == ref {
			return m, true
		}
	}
	for _, m := range meals {
		if strings.EqualFold(m.Name, ref) {
			return m, true
		}
	}
	return models.Meal{}, false
}

// ToggleFavorite adds or removes a food id and reports whether it is now a favorite.
func ToggleFavorite(favs []string, foodID string) ([]string, bool) {
	for i, id := range favs {
		if id == foodID {
			return append(favs[:i], favs[i+1:]...), false
		}
	}
	return append(favs, foodID), true
}
