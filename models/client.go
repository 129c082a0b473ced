package models

import "time"

type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Phone        string `bson:"phone" json:"phone"`
	Relationship string `bson:"relationship" json:"relationship"`
}

// Client is a therapist's view of a consumer.
type Client struct {
	ID                string            `bson:"id" json:"id"`
	Name              string            `bson:"name" json:"name"`
	Email             string            `bson:"email" json:"email"`
	Age               int               `bson:"age" json:"age"`
	Avatar            string            `bson:"avatar,omitempty" json:"avatar,omitempty"`
	MentalHealthGoals []string          `bson:"mentalHealthGoals" json:"mentalHealthGoals"`
	JoinedAt          time.Time         `bson:"joinedAt" json:"joinedAt"`
	LastSessionDate   *time.Time        `bson:"lastSessionDate,omitempty" json:"lastSessionDate,omitempty"`
	TotalSessions     int               `bson:"totalSessions" json:"totalSessions"`
	CurrentMoodScore  float64           `bson:"currentMoodScore" json:"currentMoodScore"` // 0-10
	EmergencyContact  *EmergencyContact `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
}

func (c Client) AvatarOrDefault() string {
	if c.Avatar == "" {
		return DefaultAvatar
	}
	return c.Avatar
}
