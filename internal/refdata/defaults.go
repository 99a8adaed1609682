package refdata

import "github.com/misterclayt0n/ironlog/internal/models"

var gramsOnly = []models.FoodUnit{{Key: "g", Label: "grams", GramsPerUnit: 1}}

func withGrams(extra ...models.FoodUnit) []models.FoodUnit {
	return append(append([]models.FoodUnit{}, gramsOnly...), extra...)
}

func defaultExercises() []models.Exercise {
	return []models.Exercise{
		{ID: "bench-press", Name: "Bench Press", MuscleGroup: "chest", Type: models.ExerciseCompound},
		{ID: "incline-db-press", Name: "Incline Dumbbell Press", MuscleGroup: "chest", Type: models.ExerciseCompound},
		{ID: "cable-fly", Name: "Cable Fly", MuscleGroup: "chest", Type: models.ExerciseAccessory},
		{ID: "overhead-press", Name: "Overhead Press", MuscleGroup: "shoulders", Type: models.ExerciseCompound},
		{ID: "lateral-raise", Name: "Lateral Raise", MuscleGroup: "shoulders", Type: models.ExerciseAccessory},
		{ID: "triceps-pushdown", Name: "Triceps Pushdown", MuscleGroup: "triceps", Type: models.ExerciseAccessory},
		{ID: "dips", Name: "Dips", MuscleGroup: "triceps", Type: models.ExerciseCompound},
		{ID: "deadlift", Name: "Deadlift", MuscleGroup: "back", Type: models.ExerciseCompound},
		{ID: "barbell-row", Name: "Barbell Row", MuscleGroup: "back", Type: models.ExerciseCompound},
		{ID: "pull-up", Name: "Pull-Up", MuscleGroup: "back", Type: models.ExerciseCompound},
		{ID: "lat-pulldown", Name: "Lat Pulldown", MuscleGroup: "back", Type: models.ExerciseAccessory},
		{ID: "biceps-curl", Name: "Biceps Curl", MuscleGroup: "biceps", Type: models.ExerciseAccessory},
		{ID: "squat", Name: "Back Squat", MuscleGroup: "quads", Type: models.ExerciseCompound},
		{ID: "leg-press", Name: "Leg Press", MuscleGroup: "quads", Type: models.ExerciseCompound},
		{ID: "leg-extension", Name: "Leg Extension", MuscleGroup: "quads", Type: models.ExerciseAccessory},
		{ID: "romanian-deadlift", Name: "Romanian Deadlift", MuscleGroup: "hamstrings", Type: models.ExerciseCompound},
		{ID: "leg-curl", Name: "Leg Curl", MuscleGroup: "hamstrings", Type: models.ExerciseAccessory},
		{ID: "calf-raise", Name: "Calf Raise", MuscleGroup: "calves", Type: models.ExerciseAccessory},
		{ID: "plank", Name: "Plank", MuscleGroup: "core", Type: models.ExerciseAccessory},
	}
}

func defaultFoods() []models.Food {
	return []models.Food{
		{ID: "chicken-breast", Name: "Chicken Breast (cooked)", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
			Units:              withGrams(models.FoodUnit{Key: "oz", Label: "ounce", GramsPerUnit: 28.35})},
		{ID: "egg", Name: "Egg", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 143, Protein: 12.6, Carbs: 0.7, Fat: 9.5},
			Units:              withGrams(models.FoodUnit{Key: "large", Label: "large egg", GramsPerUnit: 50})},
		{ID: "white-rice", Name: "White Rice (cooked)", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3},
			Units:              withGrams(models.FoodUnit{Key: "cup", Label: "cup", GramsPerUnit: 158})},
		{ID: "oats", Name: "Rolled Oats", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 379, Protein: 13.2, Carbs: 67.7, Fat: 6.5},
			Units:              withGrams(models.FoodUnit{Key: "cup", Label: "cup", GramsPerUnit: 81})},
		{ID: "banana", Name: "Banana", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
			Units:              withGrams(models.FoodUnit{Key: "medium", Label: "medium banana", GramsPerUnit: 118})},
		{ID: "whole-milk", Name: "Whole Milk", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
			Units:              withGrams(models.FoodUnit{Key: "cup", Label: "cup", GramsPerUnit: 244})},
		{ID: "greek-yogurt", Name: "Greek Yogurt (plain, nonfat)", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 59, Protein: 10.3, Carbs: 3.6, Fat: 0.4},
			Units:              withGrams(models.FoodUnit{Key: "cup", Label: "cup", GramsPerUnit: 245})},
		{ID: "whey", Name: "Whey Protein", ReferenceGrams: 30,
			PerReferenceMacros: models.Nutrients{Calories: 120, Protein: 24, Carbs: 3, Fat: 1.5},
			Units:              withGrams(models.FoodUnit{Key: "scoop", Label: "scoop", GramsPerUnit: 30})},
		{ID: "peanut-butter", Name: "Peanut Butter", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 588, Protein: 25, Carbs: 20, Fat: 50},
			Units:              withGrams(models.FoodUnit{Key: "tbsp", Label: "tablespoon", GramsPerUnit: 16})},
		{ID: "olive-oil", Name: "Olive Oil", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 884, Protein: 0, Carbs: 0, Fat: 100},
			Units:              withGrams(models.FoodUnit{Key: "tbsp", Label: "tablespoon", GramsPerUnit: 13.5})},
		{ID: "salmon", Name: "Salmon (cooked)", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 206, Protein: 22, Carbs: 0, Fat: 12},
			Units:              withGrams(models.FoodUnit{Key: "fillet", Label: "fillet", GramsPerUnit: 154})},
		{ID: "broccoli", Name: "Broccoli", ReferenceGrams: 100,
			PerReferenceMacros: models.Nutrients{Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4},
			Units:              withGrams(models.FoodUnit{Key: "cup", Label: "cup, chopped", GramsPerUnit: 91})},
	}
}
