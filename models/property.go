// models/property.go
package models

import "encoding/json"

// Property is a co-living property with its rate card entries.
type Property struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	RateCard []RateCard  `json:"rateCard"`
}

// RateCard is a room-type-and-price entry associated with a property.
type RateCard struct {
	RateCardID json.Number `json:"rateCardId"`
	PropertyID json.Number `json:"propertyId"`
	RoomType   string      `json:"roomType"`
	Rent       int64       `json:"rent"`
	Images     []string    `json:"images"`
}

// Room is an individual bookable room.
type Room struct {
	ID          json.Number `json:"id"`
	RoomNumber  json.Number `json:"roomNumber"`
	RoomType    string      `json:"roomType"`
	MonthlyRent int64       `json:"monthlyRent"`
	Description string      `json:"description"`
	Amenities   []string    `json:"amenities"`
	Images      []string    `json:"images"`
	RateCardID  json.Number `json:"rateCardId"`
	PropertyID  json.Number `json:"propertyId"`
	Property    *RoomOwner  `json:"property"`
}

// RoomOwner is the property summary embedded in a room listing.
type RoomOwner struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
