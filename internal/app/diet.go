package app

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/ironlog/internal/diet"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
)

// AddFood logs qty units of a reference food on today's diet day.
func (s *Session) AddFood(ctx context.Context, foodID string, qty float64, unitKey string) (models.Entry, error) {
	var entry models.Entry
	err := s.mutate(ctx, "add-food", func(d *models.ProfileData, now time.Time) (string, error) {
		food, ok := s.lib.Food(foodID)
		if !ok {
			return "", models.Invalid("food", "unknown food %q", foodID)
		}
		e, err := diet.AddFood(d.Day(utils.DateKey(now)), food, qty, unitKey, now)
		if err != nil {
			return "", err
		}
		entry = e
		return fmt.Sprintf("Added %s (%d kcal)", e.Label(), e.Macros.Calories), nil
	})
	return entry, err
}

// AddMeal logs servings of a saved meal on today's diet day.
func (s *Session) AddMeal(ctx context.Context, mealRef string, servings float64) (models.Entry, error) {
	var entry models.Entry
	err := s.mutate(ctx, "add-meal", func(d *models.ProfileData, now time.Time) (string, error) {
		meal, ok := diet.FindMeal(d.Meals, mealRef)
		if !ok {
			return "", models.Precondition("meal %q not found", mealRef)
		}
		e, err := diet.AddMeal(d.Day(utils.DateKey(now)), meal, servings, now)
		if err != nil {
			return "", err
		}
		entry = e
		return fmt.Sprintf("Added %s (%d kcal)", e.Label(), e.Macros.Calories), nil
	})
	return entry, err
}

// AddQuick logs directly typed macros on today's diet day.
func (s *Session) AddQuick(ctx context.Context, label string, m models.Macros) (models.Entry, error) {
	var entry models.Entry
	err := s.mutate(ctx, "add-quick", func(d *models.ProfileData, now time.Time) (string, error) {
		e, err := diet.AddQuick(d.Day(utils.DateKey(now)), label, m, now)
		if err != nil {
			return "", err
		}
		entry = e
		return fmt.Sprintf("Added %s (%d kcal)", e.Label(), e.Macros.Calories), nil
	})
	return entry, err
}

// RemoveEntry deletes an entry from the given day; an empty key means today.
func (s *Session) RemoveEntry(ctx context.Context, dayKey, entryID string) error {
	return s.mutate(ctx, "remove-entry", func(d *models.ProfileData, now time.Time) (string, error) {
		if dayKey == "" {
			dayKey = utils.DateKey(now)
		}
		day, ok := d.DietLog[dayKey]
		if !ok || day == nil {
			return "", models.Precondition("no diet entries on %s", dayKey)
		}
		e, err := diet.RemoveEntry(day, entryID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed %s", e.Label()), nil
	})
}

// AddWater changes today's water count and returns the new value.
func (s *Session) AddWater(ctx context.Context, cups int) (int, error) {
	total := 0
	err := s.mutate(ctx, "add-water", func(d *models.ProfileData, now time.Time) (string, error) {
		if cups == 0 {
			return "", models.Invalid("cups", "must not be 0")
		}
		total = diet.AddWater(d.Day(utils.DateKey(now)), cups)
		return fmt.Sprintf("Water: %d/%d", total, d.Settings.WaterGoal), nil
	})
	return total, err
}

// SaveMeal freezes the current nutrition of each food into a new meal. A meal
// with the same name is replaced.
func (s *Session) SaveMeal(ctx context.Context, name string, lines []diet.MealLine) (models.Meal, error) {
	var saved models.Meal
	err := s.mutate(ctx, "save-meal", func(d *models.ProfileData, _ time.Time) (string, error) {
		meal, err := diet.BuildMeal(name, lines, s.lib.Food)
		if err != nil {
			return "", err
		}
		if existing, ok := diet.FindMeal(d.Meals, meal.Name); ok {
			meal.ID = existing.ID
		}
		d.Meals, saved = diet.SaveMeal(d.Meals, meal)
		return fmt.Sprintf("Meal %q saved (%d kcal per serving)", saved.Name, saved.PerServingTotals.Calories), nil
	})
	return saved, err
}

func (s *Session) DeleteMeal(ctx context.Context, ref string) error {
	return s.mutate(ctx, "delete-meal", func(d *models.ProfileData, _ time.Time) (string, error) {
		meal, ok := diet.FindMeal(d.Meals, ref)
		if !ok {
			return "", models.Precondition("meal %q not found", ref)
		}
		meals, err := diet.DeleteMeal(d.Meals, meal.ID)
		if err != nil {
			return "", err
		}
		d.Meals = meals
		return fmt.Sprintf("Meal %q deleted", meal.Name), nil
	})
}

// ToggleFavorite flips a food's favorite flag and reports the new state.
func (s *Session) ToggleFavorite(ctx context.Context, foodID string) (bool, error) {
	fav := false
	err := s.mutate(ctx, "toggle-favorite", func(d *models.ProfileData, _ time.Time) (string, error) {
		food, ok := s.lib.Food(foodID)
		if !ok {
			return "", models.Invalid("food", "unknown food %q", foodID)
		}
		d.Favorites, fav = diet.ToggleFavorite(d.Favorites, food.ID)
		if fav {
			return fmt.Sprintf("%s added to favorites", food.Name), nil
		}
		return fmt.Sprintf("%s removed from favorites", food.Name), nil
	})
	return fav, err
}
