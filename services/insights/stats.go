package insights

import (
	"time"

	"github.com/mechriz/zen-fit/models"
)

// DashboardStats are the headline numbers of the therapist dashboard.
type DashboardStats struct {
	TotalClients      int     `json:"totalClients"`
	TodaySessions     int     `json:"todaySessions"`
	TodayCompleted    int     `json:"todayCompleted"`
	CompletedSessions int     `json:"completedSessions"`
	AvgRating         float64 `json:"avgRating"`
	ReviewCount       int     `json:"reviewCount"`
}

// TherapistDashboard is everything the portal home screen renders for a day.
type TherapistDashboard struct {
	Date     string               `json:"date"`
	Stats    DashboardStats       `json:"stats"`
	Schedule []models.Appointment `json:"schedule"`
	Upcoming []models.Appointment `json:"upcoming"`
	Recent   []models.Client      `json:"recentClients"`
}

// RecentClientsOnDashboard is how many roster entries the dashboard previews.
const RecentClientsOnDashboard = 3

// BuildTherapistDashboard computes the dashboard for date. therapist may be nil.
func BuildTherapistDashboard(therapist *models.Therapist, clients []models.Client, appts []models.Appointment, date string, now time.Time) TherapistDashboard {
	today := ForDate(appts, date)
	stats := DashboardStats{
		TotalClients:      len(clients),
		TodaySessions:     len(today),
		TodayCompleted:    len(WithStatus(today, models.StatusCompleted)),
		CompletedSessions: len(WithStatus(appts, models.StatusCompleted)),
	}
	if therapist != nil {
		stats.AvgRating = therapist.Rating
		stats.ReviewCount = therapist.ReviewCount
	}

	n := RecentClientsOnDashboard
	if len(clients) < n {
		n = len(clients)
	}
	recent := make([]models.Client, n)
	copy(recent, clients[:n])

	return TherapistDashboard{
		Date:     date,
		Stats:    stats,
		Schedule: today,
		Upcoming: UpcomingFrom(appts, now),
		Recent:   recent,
	}
}

// UpcomingOnHome is how many scheduled appointments the consumer home shows.
const UpcomingOnHome = 2

// HomeDashboard is the consumer home screen.
type HomeDashboard struct {
	UserName      string               `json:"userName"`
	Progress      models.Progress      `json:"progress"`
	WeeklyPercent float64              `json:"weeklyPercent"`
	Week          []DayMark            `json:"week"`
	Upcoming      []models.Appointment `json:"upcoming"`
}

// BuildHomeDashboard computes the consumer home screen. user may be nil.
func BuildHomeDashboard(user *models.User, p models.Progress, appts []models.Appointment) HomeDashboard {
	d := HomeDashboard{
		Progress:      p,
		WeeklyPercent: WeeklyPercent(p),
		Week:          WeekDays(p),
		Upcoming:      Upcoming(appts, UpcomingOnHome),
	}
	if user != nil {
		d.UserName = user.Name
	}
	return d
}

// RecentSessionsOnProfile is how many sessions the profile lists.
const RecentSessionsOnProfile = 5

// Profile is the consumer profile screen.
type Profile struct {
	User          *models.User         `json:"user"`
	Avatar        string               `json:"avatar"`
	Progress      models.Progress      `json:"progress"`
	WeeklyPercent float64              `json:"weeklyPercent"`
	Achievements  []models.Achievement `json:"achievements"`
	Sessions      []models.Appointment `json:"sessions"`
}

func BuildProfile(user *models.User, p models.Progress, appts []models.Appointment) Profile {
	avatar := models.DefaultAvatar
	if user != nil {
		avatar = user.AvatarOrDefault()
	}
	return Profile{
		User:          user,
		Avatar:        avatar,
		Progress:      p,
		WeeklyPercent: WeeklyPercent(p),
		Achievements:  Achievements(p, appts),
		Sessions:      Recent(appts, RecentSessionsOnProfile),
	}
}
