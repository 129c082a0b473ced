package therapist

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mechriz/zen-fit/models"
)

func newTestStore(opts ...Option) *TherapistStore {
	return NewTherapistStore(append([]Option{WithLoginDelay(0)}, opts...)...)
}

func TestNewTherapistStoreFixtures(t *testing.T) {
	s := newTestStore()
	if s.Auth().IsAuthenticated {
		t.Fatalf("expected logged out store")
	}
	if n := len(s.Clients()); n != 3 {
		t.Fatalf("expected 3 clients, got %d", n)
	}
	if n := len(s.Appointments()); n != 4 {
		t.Fatalf("expected 4 appointments, got %d", n)
	}
	notes := s.SessionNotes()
	if len(notes) != 1 || notes[0].AppointmentID != "4" {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestLoginSuccess(t *testing.T) {
	s := newTestStore()
	if !s.Login(context.Background(), PortalEmail, "password123") {
		t.Fatalf("expected login to succeed")
	}
	auth := s.Auth()
	if !auth.IsAuthenticated || auth.Therapist == nil {
		t.Fatalf("expected authenticated state, got %+v", auth)
	}
	if auth.Therapist.Name != "Dr. Sarah Johnson" || auth.Therapist.ID != "1" {
		t.Fatalf("unexpected therapist %+v", auth.Therapist)
	}
	if auth.Token != MockToken {
		t.Fatalf("token = %q", auth.Token)
	}
}

func TestLoginFailureLeavesAuthUntouched(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", PortalEmail, "password"},
		{"wrong email", "someone@zenfit.co.ke", "password123"},
		{"empty", "", ""},
		{"case sensitive email", "Sarah.Johnson@zenfit.co.ke", "password123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			if s.Login(context.Background(), tc.email, tc.password) {
				t.Fatalf("expected login to fail")
			}
			if s.Auth().IsAuthenticated {
				t.Fatalf("auth changed on failed login")
			}
		})
	}

	s := newTestStore()
	s.Login(context.Background(), PortalEmail, "password123")
	before := s.Auth()
	if s.Login(context.Background(), PortalEmail, "nope") {
		t.Fatalf("expected login to fail")
	}
	if !reflect.DeepEqual(before, s.Auth()) {
		t.Fatalf("failed login replaced existing session")
	}
}

func TestLoginWaitsForDelay(t *testing.T) {
	s := NewTherapistStore(WithLoginDelay(30 * time.Millisecond))
	start := time.Now()
	if !s.Login(context.Background(), PortalEmail, "password123") {
		t.Fatalf("expected login to succeed")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("login resolved after %v", elapsed)
	}
}

func TestLoginCancelled(t *testing.T) {
	s := NewTherapistStore(WithLoginDelay(time.Minute))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if s.Login(ctx, PortalEmail, "password123") {
		t.Fatalf("expected cancelled login to fail")
	}
	if s.Auth().IsAuthenticated {
		t.Fatalf("auth changed on cancelled login")
	}
}

func TestLoginTokenIssuer(t *testing.T) {
	s := newTestStore(WithTokenIssuer(func(th models.Therapist) (string, error) {
		return "tok-" + th.ID, nil
	}))
	s.Login(context.Background(), PortalEmail, "password123")
	if tok, ok := s.SessionToken(); !ok || tok != "tok-1" {
		t.Fatalf("SessionToken = %q, %v", tok, ok)
	}

	failing := newTestStore(WithTokenIssuer(func(models.Therapist) (string, error) {
		return "", errors.New("no signing key")
	}))
	if failing.Login(context.Background(), PortalEmail, "password123") {
		t.Fatalf("expected login to fail when no token can be issued")
	}
}

func TestLogout(t *testing.T) {
	s := newTestStore()
	s.Login(context.Background(), PortalEmail, "password123")
	s.Logout()
	auth := s.Auth()
	if auth.IsAuthenticated || auth.Therapist != nil || auth.Token != "" {
		t.Fatalf("expected cleared auth, got %+v", auth)
	}
	if _, ok := s.SessionToken(); ok {
		t.Fatalf("expected no session token")
	}
}

func TestTherapistStoreRoundTrip(t *testing.T) {
	s := newTestStore()

	clients := []models.Client{{ID: "9", Name: "New Client", MentalHealthGoals: []string{"Mindfulness"}}}
	s.SetClients(clients)
	if got := s.Clients(); !reflect.DeepEqual(got, clients) {
		t.Fatalf("clients round trip: %+v", got)
	}

	appts := []models.Appointment{}
	s.SetAppointments(appts)
	if got := s.Appointments(); !reflect.DeepEqual(got, appts) {
		t.Fatalf("appointments round trip: %+v", got)
	}

	notes := []models.SessionNote{{ID: "n", ClientID: "9"}}
	s.SetSessionNotes(notes)
	if got := s.SessionNotes(); !reflect.DeepEqual(got, notes) {
		t.Fatalf("notes round trip: %+v", got)
	}
}

func TestAddSessionNote(t *testing.T) {
	now := time.Date(2024, 12, 23, 11, 0, 0, 0, time.UTC)
	s := newTestStore(WithClock(func() time.Time { return now }))
	s.Login(context.Background(), PortalEmail, "password123")

	note := s.AddSessionNote(models.SessionNote{AppointmentID: "1", ClientID: "1", Content: "Reviewed homework"})
	if note.ID == "" || note.TherapistID != "1" {
		t.Fatalf("unexpected note %+v", note)
	}
	if !note.CreatedAt.Equal(now) || !note.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps %+v", note)
	}
	if n := len(s.SessionNotes()); n != 2 {
		t.Fatalf("expected 2 notes, got %d", n)
	}
}

func TestAddSessionNoteIgnoresCallerID(t *testing.T) {
	s := newTestStore()
	existing := s.SessionNotes()[0].ID

	note := s.AddSessionNote(models.SessionNote{ID: existing, ClientID: "1", Content: "Follow-up"})
	if note.ID == existing || note.ID == "" {
		t.Fatalf("note kept caller id %q", note.ID)
	}
	seen := map[string]bool{}
	for _, n := range s.SessionNotes() {
		if seen[n.ID] {
			t.Fatalf("duplicate note id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		status models.AppointmentStatus
		want   error
	}{
		{"scheduled to completed", "1", models.StatusCompleted, nil},
		{"scheduled to no-show", "2", models.StatusNoShow, nil},
		{"completed is final", "4", models.StatusCancelled, ErrInvalidTransition},
		{"unknown status", "1", "postponed", ErrInvalidStatus},
		{"unknown appointment", "99", models.StatusCompleted, ErrAppointmentNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore()
			got, err := s.UpdateAppointmentStatus(tc.id, tc.status)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
			if tc.want != nil {
				return
			}
			if got.Status != tc.status {
				t.Fatalf("returned status %s", got.Status)
			}
			for _, a := range s.Appointments() {
				if a.ID == tc.id && a.Status != tc.status {
					t.Fatalf("stored status %s", a.Status)
				}
			}
		})
	}
}
