// Package insights holds the read-side rules the screens apply to store data:
// filters, orderings and the small aggregates shown on dashboards.
package insights

import (
	"sort"
	"time"

	"github.com/mechriz/zen-fit/models"
)

// DateLayout is the layout of Appointment.Date.
const DateLayout = "2006-01-02"

// Upcoming returns the scheduled appointments in their original order.
// A limit of zero or less returns all of them.
func Upcoming(appts []models.Appointment, limit int) []models.Appointment {
	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status != models.StatusScheduled {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// UpcomingFrom returns scheduled appointments dated today or later.
func UpcomingFrom(appts []models.Appointment, now time.Time) []models.Appointment {
	today := now.Format(DateLayout)
	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status != models.StatusScheduled {
			continue
		}
		d, ok := ParseDate(a.Date)
		if !ok || d.Format(DateLayout) < today {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ForDate returns the appointments whose date equals the given string exactly.
func ForDate(appts []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// ForClient returns the appointments booked for one client.
func ForClient(appts []models.Appointment, clientID string) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}

// WithStatus returns the appointments in the given state.
func WithStatus(appts []models.Appointment, status models.AppointmentStatus) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns at most n appointments from the head of the list.
func Recent(appts []models.Appointment, n int) []models.Appointment {
	if n < 0 {
		n = 0
	}
	if len(appts) < n {
		n = len(appts)
	}
	out := make([]models.Appointment, n)
	copy(out, appts[:n])
	return out
}

// SortByDateDesc returns a copy ordered newest first. Ties keep their input
// order and dates that do not parse go last.
func SortByDateDesc(appts []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(appts))
	copy(out, appts)
	sort.SliceStable(out, func(i, j int) bool {
		di, okI := ParseDate(out[i].Date)
		dj, okJ := ParseDate(out[j].Date)
		switch {
		case okI && !okJ:
			return true
		case !okI:
			return false
		}
		return di.After(dj)
	})
	return out
}

// ParseDate parses a YYYY-MM-DD appointment date.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
