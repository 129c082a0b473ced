package insights

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mechriz/zen-fit/models"
)

// ClientFilter is the roster category selected next to the search box.
type ClientFilter string

const (
	FilterAll            ClientFilter = "all"
	FilterRecent         ClientFilter = "recent"
	FilterNeedsAttention ClientFilter = "needs-attention"
)

func (f ClientFilter) Valid() bool {
	switch f {
	case FilterAll, FilterRecent, FilterNeedsAttention:
		return true
	}
	return false
}

const (
	// RecentWindow bounds the "recent" roster category.
	RecentWindow = 7 * 24 * time.Hour
	// AttentionThreshold is the mood score below which a client needs attention.
	AttentionThreshold = 5.0
)

// FilterClients keeps the clients whose name or email contains query
// (case-insensitive) and who fall in the selected category.
func FilterClients(clients []models.Client, query string, filter ClientFilter, now time.Time) []models.Client {
	q := strings.ToLower(query)
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if matchesSearch(c, q) && matchesFilter(c, filter, now) {
			out = append(out, c)
		}
	}
	return out
}

func matchesSearch(c models.Client, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Email), lowerQuery)
}

func matchesFilter(c models.Client, filter ClientFilter, now time.Time) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterRecent:
		return c.LastSessionDate != nil && c.LastSessionDate.After(now.Add(-RecentWindow))
	case FilterNeedsAttention:
		return c.CurrentMoodScore < AttentionThreshold
	}
	return false
}

// FindClient looks a client up by id.
func FindClient(clients []models.Client, id string) (models.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// DaysSinceLastSession is the number of whole days since the client's last
// session. It reports false when the client has never had one.
func DaysSinceLastSession(c models.Client, now time.Time) (int, bool) {
	if c.LastSessionDate == nil {
		return 0, false
	}
	days := math.Floor(now.Sub(*c.LastSessionDate).Hours() / 24)
	return int(days), true
}

// FormatDaysSince renders DaysSinceLastSession for display.
func FormatDaysSince(c models.Client, now time.Time) string {
	days, ok := DaysSinceLastSession(c, now)
	if !ok {
		return "N/A"
	}
	return strconv.Itoa(days)
}

// MoodBand buckets a mood score for colouring.
type MoodBand string

const (
	MoodGood    MoodBand = "good"
	MoodOK      MoodBand = "ok"
	MoodWatch   MoodBand = "watch"
	MoodConcern MoodBand = "concern"
)

func MoodBandFor(score float64) MoodBand {
	switch {
	case score >= 8:
		return MoodGood
	case score >= 6:
		return MoodOK
	case score >= 4:
		return MoodWatch
	default:
		return MoodConcern
	}
}

// NotesForClient returns the session notes written about one client.
func NotesForClient(notes []models.SessionNote, clientID string) []models.SessionNote {
	out := make([]models.SessionNote, 0)
	for _, n := range notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out
}

// ErrClientNotFound is returned when a client id is not on the roster.
var ErrClientNotFound = errors.New("client not found")

// ClientHistoryLimit caps the appointments listed on a client's detail panel.
const ClientHistoryLimit = 5

// ClientHistory is the detail panel of one client in the roster.
type ClientHistory struct {
	Client           models.Client        `json:"client"`
	Avatar           string               `json:"avatar"`
	Appointments     []models.Appointment `json:"appointments"`
	Notes            []models.SessionNote `json:"notes"`
	DaysSinceSession string               `json:"daysSinceSession"`
	Mood             MoodBand             `json:"mood"`
}

// BuildClientHistory assembles the detail panel for clientID.
func BuildClientHistory(clients []models.Client, appts []models.Appointment, notes []models.SessionNote, clientID string, now time.Time) (*ClientHistory, error) {
	c, ok := FindClient(clients, clientID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, clientID)
	}
	history := SortByDateDesc(ForClient(appts, clientID))
	return &ClientHistory{
		Client:           c,
		Avatar:           c.AvatarOrDefault(),
		Appointments:     Recent(history, ClientHistoryLimit),
		Notes:            NotesForClient(notes, clientID),
		DaysSinceSession: FormatDaysSince(c, now),
		Mood:             MoodBandFor(c.CurrentMoodScore),
	}, nil
}
