package models

import "encoding/json"

// Profile is the unit of persistence. Data is owned by the application layer
// and is always written wholesale.
type Profile struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

type Settings struct {
	Name        string `json:"name"`
	CalorieGoal int    `json:"calorieGoal"`
	WaterGoal   int    `json:"waterGoal"`
}

type RestDefaults struct {
	CompoundSec  int  `json:"compoundSec"`
	AccessorySec int  `json:"accessorySec"`
	AutoAdjust   bool `json:"autoAdjust"`
}

type ProfileData struct {
	Settings      Settings            `json:"settings"`
	RestDefaults  RestDefaults        `json:"restDefaults"`
	WeightLog     []WeightEntry       `json:"weightLog"`
	DietLog       map[string]*DietDay `json:"dietLog"`
	SetsLog       []SetLogEntry       `json:"setsLog"`
	Templates     []Template          `json:"templates"`
	Meals         []Meal              `json:"meals"`
	Favorites     []string            `json:"favorites"`
	ActiveWorkout *ActiveWorkout      `json:"activeWorkout"`
}

// Day returns the diet day for the key, creating it when missing.
func (d *ProfileData) Day(key string) *DietDay {
	if d.DietLog == nil {
		d.DietLog = make(map[string]*DietDay)
	}
	day, ok := d.DietLog[key]
	if !ok || day == nil {
		day = &DietDay{}
		d.DietLog[key] = day
	}
	return day
}
