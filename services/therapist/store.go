// Package therapist holds the state of the therapist portal: the login
// session, the client roster, the appointment book and session notes.
package therapist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/utils"
)

// The portal accepts exactly one account.
const (
	PortalEmail       = "sarah.johnson@zenfit.co.ke"
	portalPassword    = "password123"
	MockToken         = "mock-jwt-token"
	DefaultLoginDelay = time.Second
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("appointment status transition not allowed")
)

var portalHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(portalPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hashing portal credential: %v", err))
	}
	return hash
})

// TokenIssuer mints the session token handed out on login.
type TokenIssuer func(t models.Therapist) (string, error)

// StaticToken always issues MockToken.
func StaticToken(models.Therapist) (string, error) {
	return MockToken, nil
}

type Option func(*TherapistStore)

func WithLoginDelay(d time.Duration) Option {
	return func(s *TherapistStore) { s.loginDelay = d }
}

func WithTokenIssuer(issue TokenIssuer) Option {
	return func(s *TherapistStore) { s.issueToken = issue }
}

func WithClock(now func() time.Time) Option {
	return func(s *TherapistStore) { s.now = now }
}

// TherapistStore is the portal-side state container. Setters replace whole
// lists without validation; getters hand out copies.
type TherapistStore struct {
	mu           sync.RWMutex
	auth         models.TherapistAuth
	clients      []models.Client
	appointments []models.Appointment
	notes        []models.SessionNote

	loginDelay time.Duration
	issueToken TokenIssuer
	now        func() time.Time
}

// NewTherapistStore returns a logged-out store seeded with the demo roster.
func NewTherapistStore(opts ...Option) *TherapistStore {
	s := &TherapistStore{
		clients:      fixtureClients(),
		appointments: fixtureAppointments(),
		notes:        fixtureNotes(),
		loginDelay:   DefaultLoginDelay,
		issueToken:   StaticToken,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login waits out the login delay and then checks the credentials. Only a
// match changes the auth state. A cancelled ctx counts as a failed login.
func (s *TherapistStore) Login(ctx context.Context, email, password string) bool {
	logger := utils.GetLogger()

	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			logger.Warn("Login abandoned", zap.String("email", email), zap.Error(ctx.Err()))
			return false
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return false
	}

	if email != PortalEmail || bcrypt.CompareHashAndPassword(portalHash(), []byte(password)) != nil {
		logger.Info("Login rejected", zap.String("email", email))
		return false
	}

	profile := SarahJohnson()
	token, err := s.issueToken(profile)
	if err != nil {
		logger.Error("Failed to issue portal token", zap.String("therapistId", profile.ID), zap.Error(err))
		return false
	}

	s.mu.Lock()
	s.auth = models.TherapistAuth{IsAuthenticated: true, Therapist: &profile, Token: token}
	s.mu.Unlock()

	logger.Info("Therapist logged in", zap.String("therapistId", profile.ID))
	return true
}

// Logout drops the session immediately.
func (s *TherapistStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = models.TherapistAuth{}
}

func (s *TherapistStore) Auth() models.TherapistAuth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAuth(s.auth)
}

// SessionToken returns the token of the active session, if any.
func (s *TherapistStore) SessionToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.auth.IsAuthenticated {
		return "", false
	}
	return s.auth.Token, true
}

func (s *TherapistStore) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

func (s *TherapistStore) SetClients(clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = slices.Clone(clients)
}

func (s *TherapistStore) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

func (s *TherapistStore) SetAppointments(appts []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = slices.Clone(appts)
}

func (s *TherapistStore) SessionNotes() []models.SessionNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

func (s *TherapistStore) SetSessionNotes(notes []models.SessionNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = slices.Clone(notes)
}

// AddSessionNote appends note under a freshly generated id, replacing any id
// the caller set, and stamps it. The therapist id defaults to the logged-in
// therapist.
func (s *TherapistStore) AddSessionNote(note models.SessionNote) models.SessionNote {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = uuid.New().String()
	if note.TherapistID == "" && s.auth.Therapist != nil {
		note.TherapistID = s.auth.Therapist.ID
	}
	now := s.now()
	note.CreatedAt = now
	note.UpdatedAt = now
	note.Goals = slices.Clone(note.Goals)
	note.NextSteps = slices.Clone(note.NextSteps)

	s.notes = append(s.notes, note)
	return note
}

// UpdateAppointmentStatus moves a scheduled appointment to a final state.
func (s *TherapistStore) UpdateAppointmentStatus(id string, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		a := &s.appointments[i]
		if a.ID != id {
			continue
		}
		if !a.Status.CanTransition(status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, status)
		}
		a.Status = status
		out := *a
		return &out, nil
	}
	return nil, ErrAppointmentNotFound
}

func cloneAuth(a models.TherapistAuth) models.TherapistAuth {
	if a.Therapist != nil {
		t := *a.Therapist
		a.Therapist = &t
	}
	return a
}
