package insights

import (
	"github.com/mechriz/zen-fit/models"
)

// WeeklyPercent is the share of the weekly workout goal reached, in [0,100].
// A goal of zero or less yields 0.
func WeeklyPercent(p models.Progress) float64 {
	goal := p.Workouts.WeeklyGoal
	if goal <= 0 {
		return 0
	}
	pct := float64(p.Workouts.WeeklyProgress) * 100 / float64(goal)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// Weekdays are the columns of the weekly goal bar.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayMark is one column of the weekly goal bar.
type DayMark struct {
	Day  string `json:"day"`
	Done bool   `json:"done"`
}

// WeekDays ticks off the first WeeklyProgress days of the week.
func WeekDays(p models.Progress) []DayMark {
	marks := make([]DayMark, len(Weekdays))
	for i, d := range Weekdays {
		marks[i] = DayMark{Day: d, Done: i < p.Workouts.WeeklyProgress}
	}
	return marks
}

// Achievements derives the profile badges from the user's progress and bookings.
func Achievements(p models.Progress, appts []models.Appointment) []models.Achievement {
	bookedTherapy := false
	for _, a := range appts {
		if a.Type == models.AppointmentTherapy {
			bookedTherapy = true
			break
		}
	}
	return []models.Achievement{
		{Title: "First Workout", Description: "Completed your first workout session", Earned: p.Workouts.TotalSessions >= 1},
		{Title: "Consistency King", Description: "7-day workout streak", Earned: p.Workouts.Streak >= 7},
		{Title: "Mental Health Advocate", Description: "Booked your first therapy session", Earned: bookedTherapy},
		{Title: "Wellness Warrior", Description: "Complete 30 workout sessions", Earned: p.Workouts.TotalSessions >= 30},
		{Title: "Mindful Month", Description: "Complete 4 therapy sessions in a month", Earned: p.MentalHealth.TherapySessions >= 4},
	}
}
