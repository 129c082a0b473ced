package models

import "time"

// SessionNote is a therapist's write-up of one appointment.
type SessionNote struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	TherapistID   string    `bson:"therapistId" json:"therapistId"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	Content       string    `bson:"content" json:"content"`
	Goals         []string  `bson:"goals" json:"goals"`
	NextSteps     []string  `bson:"nextSteps" json:"nextSteps"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
