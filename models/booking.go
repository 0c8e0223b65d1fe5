// models/booking.go
package models

import "encoding/json"

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	UserID      int64  `json:"userId"`
	RateCardID  int64  `json:"rateCardId"`
	PropertyID  int64  `json:"propertyId"`
	CheckInDate string `json:"checkInDate"` // ISO date, e.g. 2026-09-01
	MonthlyRent int64  `json:"monthlyRent"`
	Duration    int    `json:"duration"` // months
	Status      string `json:"status"`
	RoomType    string `json:"roomType"`
}

// Booking is a booking record as returned by the listing endpoint.
type Booking struct {
	ID            json.Number `json:"id"`
	CheckInDate   string      `json:"checkInDate"`
	CheckOutDate  string      `json:"checkOutDate"`
	DisplayStatus string      `json:"displayStatus"`
	Room          *BookedRoom `json:"room"`
}

// BookedRoom is the room summary embedded in a booking record.
type BookedRoom struct {
	RoomNumber  json.Number `json:"roomNumber"`
	RoomType    string      `json:"roomType"`
	MonthlyRent int64       `json:"monthlyRent"`
	Property    *RoomOwner  `json:"property"`
}
