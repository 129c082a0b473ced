package insights

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mechriz/zen-fit/models"
)

var testNow = time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}

func sampleClients() []models.Client {
	return []models.Client{
		{ID: "1", Name: "Alex Johnson", Email: "alex.johnson@email.com", CurrentMoodScore: 7, LastSessionDate: ago(6 * 24 * time.Hour)},
		{ID: "2", Name: "Sam Wilson", Email: "sam.wilson@email.com", CurrentMoodScore: 5, LastSessionDate: ago(7*24*time.Hour + time.Second)},
		{ID: "3", Name: "Maya Patel", Email: "maya.patel@email.com", CurrentMoodScore: 4.9},
		{ID: "4", Name: "Lee Otieno", Email: "lee@zenfit.co.ke", CurrentMoodScore: 2, LastSessionDate: ago(time.Hour)},
	}
}

func ids(clients []models.Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterClientsEmptyQueryAll(t *testing.T) {
	clients := sampleClients()
	got := FilterClients(clients, "", FilterAll, testNow)
	if !reflect.DeepEqual(got, clients) {
		t.Fatalf("expected the full list unchanged, got %v", ids(got))
	}
}

func TestFilterClientsSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"alex", []string{"1"}},
		{"WILSON", []string{"2"}},
		{"email.com", []string{"1", "2", "3"}},
		{"zenfit", []string{"4"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		got := ids(FilterClients(sampleClients(), tt.query, FilterAll, testNow))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("query %q: got %v want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterClientsNeedsAttention(t *testing.T) {
	got := ids(FilterClients(sampleClients(), "", FilterNeedsAttention, testNow))
	want := []string{"3", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilterClientsRecentWindow(t *testing.T) {
	got := ids(FilterClients(sampleClients(), "", FilterRecent, testNow))
	// 6 days ago is in, 7 days and one second ago is out, no session is out.
	want := []string{"1", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilterClientsCombinesSearchAndCategory(t *testing.T) {
	got := ids(FilterClients(sampleClients(), "email.com", FilterNeedsAttention, testNow))
	if !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("got %v", got)
	}
	if got := FilterClients(sampleClients(), "", ClientFilter("vip"), testNow); len(got) != 0 {
		t.Fatalf("unknown category should match nothing, got %v", ids(got))
	}
}

func TestFilterClientsIdempotent(t *testing.T) {
	for _, f := range []ClientFilter{FilterAll, FilterRecent, FilterNeedsAttention} {
		once := FilterClients(sampleClients(), "a", f, testNow)
		twice := FilterClients(once, "a", f, testNow)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("filter %s is not idempotent: %v vs %v", f, ids(once), ids(twice))
		}
	}
}

func TestDaysSinceLastSession(t *testing.T) {
	c := models.Client{LastSessionDate: ago(3*24*time.Hour + 23*time.Hour)}
	days, ok := DaysSinceLastSession(c, testNow)
	if !ok || days != 3 {
		t.Fatalf("expected 3 days, got %d (ok=%v)", days, ok)
	}
	if FormatDaysSince(c, testNow) != "3" {
		t.Fatalf("unexpected format: %s", FormatDaysSince(c, testNow))
	}

	if _, ok := DaysSinceLastSession(models.Client{}, testNow); ok {
		t.Fatal("expected no value without a last session")
	}
	if got := FormatDaysSince(models.Client{}, testNow); got != "N/A" {
		t.Fatalf("expected N/A, got %s", got)
	}
}

func TestMoodBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  MoodBand
	}{
		{10, MoodGood},
		{8, MoodGood},
		{7.9, MoodOK},
		{6, MoodOK},
		{5, MoodWatch},
		{4, MoodWatch},
		{3.9, MoodConcern},
		{0, MoodConcern},
	}
	for _, tt := range tests {
		if got := MoodBandFor(tt.score); got != tt.want {
			t.Errorf("MoodBandFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBuildClientHistory(t *testing.T) {
	appts := append(sampleAppointments(),
		models.Appointment{ID: "7", ClientID: "1", Date: "2024-11-01"},
		models.Appointment{ID: "8", ClientID: "1", Date: "2024-10-01"},
		models.Appointment{ID: "9", ClientID: "1", Date: "2024-09-01"},
		models.Appointment{ID: "10", ClientID: "1", Date: "2024-08-01"},
	)
	notes := []models.SessionNote{
		{ID: "n1", ClientID: "1", AppointmentID: "4"},
		{ID: "n2", ClientID: "2", AppointmentID: "2"},
	}

	h, err := BuildClientHistory(sampleClients(), appts, notes, "1", testNow)
	if err != nil {
		t.Fatalf("BuildClientHistory returned error: %v", err)
	}
	if len(h.Appointments) != ClientHistoryLimit {
		t.Fatalf("expected %d appointments, got %d", ClientHistoryLimit, len(h.Appointments))
	}
	if h.Appointments[0].ID != "1" || h.Appointments[1].ID != "4" {
		t.Fatalf("unexpected ordering: %s, %s", h.Appointments[0].ID, h.Appointments[1].ID)
	}
	if len(h.Notes) != 1 || h.Notes[0].ID != "n1" {
		t.Fatalf("unexpected notes: %+v", h.Notes)
	}
	if h.DaysSinceSession != "6" || h.Mood != MoodOK {
		t.Fatalf("unexpected summary: %s %s", h.DaysSinceSession, h.Mood)
	}
	if h.Avatar != models.DefaultAvatar {
		t.Fatalf("expected default avatar, got %s", h.Avatar)
	}

	if _, err := BuildClientHistory(sampleClients(), appts, notes, "99", testNow); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
