package models

import "time"

const (
	EntryFood  = "food"
	EntryMeal  = "meal"
	EntryQuick = "quick"
)

// Macros are rounded at insertion time; day totals are sums of these.
type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

func (m Macros) Sub(o Macros) Macros {
	return Macros{
		Calories: m.Calories - o.Calories,
		Protein:  m.Protein - o.Protein,
		Carbs:    m.Carbs - o.Carbs,
		Fat:      m.Fat - o.Fat,
	}
}

type FoodEntry struct {
	FoodID string  `json:"foodId"`
	Name   string  `json:"name"`
	Qty    float64 `json:"qty"`
	Unit   string  `json:"unit"`
	Grams  float64 `json:"grams"`
}

type ComponentSnapshot struct {
	FoodID string  `json:"foodId"`
	Name   string  `json:"name"`
	Qty    float64 `json:"qty"`
	Unit   string  `json:"unit"`
	Grams  float64 `json:"grams"`
	Macros Macros  `json:"macros"`
}

type MealEntry struct {
	MealID     string              `json:"mealId"`
	Name       string              `json:"name"`
	Servings   float64             `json:"servings"`
	Components []ComponentSnapshot `json:"components"`
}

type QuickEntry struct {
	Label string `json:"label"`
}

// Entry is a tagged variant; exactly one of Food, Meal, Quick is set, matching Kind.
type Entry struct {
	ID     string      `json:"id"`
	Kind   string      `json:"kind"`
	At     time.Time   `json:"at"`
	Macros Macros      `json:"macros"`
	Food   *FoodEntry  `json:"food,omitempty"`
	Meal   *MealEntry  `json:"meal,omitempty"`
	Quick  *QuickEntry `json:"quick,omitempty"`
}

func (e Entry) Label() string {
	switch {
	case e.Food != nil:
		return e.Food.Name
	case e.Meal != nil:
		return e.Meal.Name
	case e.Quick != nil:
		return e.Quick.Label
	}
	return e.Kind
}

type DietDay struct {
	Entries []Entry `json:"entries"`
	Totals  Macros  `json:"totals"`
	Water   int     `json:"water"`
}

// PerRefSnapshot freezes a food's nutrition at the time a meal is saved.
type PerRefSnapshot struct {
	ReferenceGrams float64   `json:"referenceGrams"`
	Macros         Nutrients `json:"macros"`
}

type MealItem struct {
	FoodID         string         `json:"foodId"`
	Name           string         `json:"name"`
	Qty            float64        `json:"qty"`
	UnitKey        string         `json:"unitKey"`
	Grams          float64        `json:"grams"`
	PerRefSnapshot PerRefSnapshot `json:"perRefSnapshot"`
}

type Meal struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Items            []MealItem `json:"items"`
	PerServingTotals Macros     `json:"perServingTotals"`
}
