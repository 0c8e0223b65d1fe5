// models/event.go
package models

import "encoding/json"

// Event is a community event shown on the dashboard.
type Event struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Location    string      `json:"location"`
}

// FoodMenu is a property's weekly food menu, keyed by day name.
type FoodMenu struct {
	ID       json.Number        `json:"id"`
	WeekMenu map[string]DayMenu `json:"weekMenu"`
}

// DayMenu is a single day's meals.
type DayMenu struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}
