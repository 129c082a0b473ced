package models

import "time"

// DefaultAvatar is shown for clients and users without a profile picture.
const DefaultAvatar = "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=400"

// User is the consumer-side account created at the end of onboarding.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email"`
	Age               int       `bson:"age" json:"age"`       // 16-24 is suggested during onboarding, not enforced
	Weight            float64   `bson:"weight" json:"weight"` // kg
	Height            float64   `bson:"height" json:"height"` // cm
	FitnessGoals      []string  `bson:"fitnessGoals" json:"fitnessGoals"`
	MentalHealthGoals []string  `bson:"mentalHealthGoals" json:"mentalHealthGoals"`
	Avatar            string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	JoinedAt          time.Time `bson:"joinedAt" json:"joinedAt"`
}

// AvatarOrDefault returns the user's avatar or the shared placeholder.
func (u User) AvatarOrDefault() string {
	if u.Avatar == "" {
		return DefaultAvatar
	}
	return u.Avatar
}
