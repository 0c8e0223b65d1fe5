// models/profile.go
package models

import "encoding/json"

// UserProfile is the full profile record behind the profile screen.
type UserProfile struct {
	ID                json.Number `json:"id"`
	FullName          string      `json:"fullName"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Gender            string      `json:"gender"`
	UserType          string      `json:"userType"`
	DateOfBirth       string      `json:"dateOfBirth"`
	Bio               string      `json:"bio"`
	EmergencyContact  string      `json:"emergencyContact"`
	LivingPreferences []string    `json:"livingPreferences"`
	ProfileImage      string      `json:"profileImage"`
}

// ProfileUpdateInput carries the editable profile fields.
type ProfileUpdateInput struct {
	FullName          string   `json:"fullName,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	EmergencyContact  string   `json:"emergencyContact,omitempty"`
	LivingPreferences []string `json:"livingPreferences,omitempty"`
}
