package models

import "time"

// TimeSlot is a bookable provider slot.
type TimeSlot struct {
	ID        string `bson:"id" json:"id"`
	Date      string `bson:"date" json:"date"` // YYYY-MM-DD
	Time      string `bson:"time" json:"time"` // e.g. "10:00 AM"
	Available bool   `bson:"available" json:"available"`
}

// Therapist is the provider profile of an authenticated portal session.
type Therapist struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Email           string     `bson:"email" json:"email"`
	Specialization  []string   `bson:"specialization" json:"specialization"`
	Bio             string     `bson:"bio" json:"bio"`
	Avatar          string     `bson:"avatar" json:"avatar"`
	Rating          float64    `bson:"rating" json:"rating"` // 0-5, not validated
	ReviewCount     int        `bson:"reviewCount" json:"reviewCount"`
	PricePerSession float64    `bson:"pricePerSession" json:"pricePerSession"` // KSh
	Availability    []TimeSlot `bson:"availability" json:"availability"`
	LicenseNumber   string     `bson:"licenseNumber" json:"licenseNumber"`
	YearsExperience int        `bson:"yearsExperience" json:"yearsExperience"`
	Education       []string   `bson:"education" json:"education"`
	Languages       []string   `bson:"languages" json:"languages"`
	Verified        bool       `bson:"verified" json:"verified"`
	JoinedAt        time.Time  `bson:"joinedAt" json:"joinedAt"`
}

// TherapistListing is the discovery card shown on the wellness screen.
type TherapistListing struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  []string `json:"specialization"`
	Bio             string   `json:"bio"`
	Avatar          string   `json:"avatar"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	PricePerSession float64  `json:"pricePerSession"`
	NextAvailable   string   `json:"nextAvailable"`
	Languages       []string `json:"languages"`
	Verified        bool     `json:"verified"`
}

// SessionOffering describes one of the therapy session formats.
type SessionOffering struct {
	Type        SessionType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Duration    int         `json:"duration"` // minutes
	Popular     bool        `json:"popular"`
}

// TherapistAuth is the authentication state of the therapist portal.
type TherapistAuth struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	Therapist       *Therapist `json:"therapist"`
	Token           string     `json:"token,omitempty"`
}
