package models

import "time"

type WorkoutProgress struct {
	TotalSessions  int `json:"totalSessions"`
	TotalMinutes   int `json:"totalMinutes"`
	Streak         int `json:"streak"`
	WeeklyGoal     int `json:"weeklyGoal"`
	WeeklyProgress int `json:"weeklyProgress"` // expected <= WeeklyGoal, not enforced
}

type MentalHealthProgress struct {
	MoodScore       float64    `json:"moodScore"`
	JournalEntries  int        `json:"journalEntries"`
	TherapySessions int        `json:"therapySessions"`
	LastSessionDate *time.Time `json:"lastSessionDate,omitempty"`
}

// Progress is the per-user aggregate shown on the dashboard and profile.
type Progress struct {
	Workouts     WorkoutProgress      `json:"workouts"`
	MentalHealth MentalHealthProgress `json:"mentalHealth"`
}

// DefaultProgress is the aggregate of a freshly onboarded user.
func DefaultProgress() Progress {
	return Progress{
		Workouts: WorkoutProgress{
			WeeklyGoal: 5,
		},
		MentalHealth: MentalHealthProgress{
			MoodScore: 7,
		},
	}
}
