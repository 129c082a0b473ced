// Package app holds the state of the consumer app: the signed-up user,
// their appointments, their progress and whether onboarding is done.
package app

import (
	"errors"
	"slices"
	"sync"

	"github.com/mechriz/zen-fit/models"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyPaid         = errors.New("appointment already paid")
	ErrPaymentInProgress   = errors.New("payment already in progress")
)

// AppStore is the consumer-side state container. Setters replace whole values
// and perform no validation; getters hand out copies.
type AppStore struct {
	mu           sync.RWMutex
	user         *models.User
	appointments []models.Appointment
	progress     models.Progress
	isOnboarded  bool

	// ids of appointments with a charge in flight
	paying map[string]struct{}
}

// NewAppStore returns an empty store: no user, no appointments, default progress.
func NewAppStore() *AppStore {
	return &AppStore{
		appointments: []models.Appointment{},
		progress:     models.DefaultProgress(),
	}
}

func (s *AppStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// SetUser replaces the user. nil clears it.
func (s *AppStore) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = cloneUser(u)
}

func (s *AppStore) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

func (s *AppStore) SetAppointments(appts []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = slices.Clone(appts)
}

func (s *AppStore) Progress() models.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

func (s *AppStore) SetProgress(p models.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = p
}

func (s *AppStore) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOnboarded
}

// SetIsOnboarded flips the gate between the onboarding flow and the main app.
func (s *AppStore) SetIsOnboarded(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOnboarded = v
}

// CompleteOnboarding stores the new user and opens the main app in one step.
func (s *AppStore) CompleteOnboarding(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = cloneUser(&u)
	s.isOnboarded = true
}

func (s *AppStore) appendAppointment(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, a)
}

// claimPayment reserves id for a single charge. The claim holds until
// settlePayment or releasePayment.
func (s *AppStore) claimPayment(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		return models.Appointment{}, ErrAppointmentNotFound
	}
	if s.appointments[i].PaymentStatus == models.PaymentPaid {
		return models.Appointment{}, ErrAlreadyPaid
	}
	if _, busy := s.paying[id]; busy {
		return models.Appointment{}, ErrPaymentInProgress
	}
	if s.paying == nil {
		s.paying = make(map[string]struct{})
	}
	s.paying[id] = struct{}{}
	return s.appointments[i], nil
}

func (s *AppStore) releasePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paying, id)
}

// settlePayment marks id paid and drops its claim.
func (s *AppStore) settlePayment(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paying, id)
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].PaymentStatus = models.PaymentPaid
			return s.appointments[i], nil
		}
	}
	return models.Appointment{}, ErrAppointmentNotFound
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.FitnessGoals = slices.Clone(u.FitnessGoals)
	c.MentalHealthGoals = slices.Clone(u.MentalHealthGoals)
	return &c
}
