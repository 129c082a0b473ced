package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/services/payment"
	"github.com/mechriz/zen-fit/utils"
)

var (
	ErrIncompleteBooking = errors.New("date and time are required")
	ErrUnknownTimeSlot   = errors.New("time slot is not offered")
)

// AvailableTimes are the slots offered on every bookable day.
var AvailableTimes = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Every booking currently goes to the featured therapist.
const (
	DefaultProviderID   = "1"
	DefaultProviderName = "Dr. Sarah Johnson"
	SessionDuration     = 50
	SessionPrice        = 2000
	SessionCurrency     = "KES"
)

type BookingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type PaymentRequest struct {
	Method payment.Method `json:"method"`
	Phone  string         `json:"phone"`
}

// AppointmentArchive keeps a durable copy of booked appointments.
type AppointmentArchive interface {
	Save(ctx context.Context, appt models.Appointment) error
}

// ReminderScheduler queues a reminder ahead of a booked session.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// BookingService books and pays for therapy sessions on behalf of the app user.
type BookingService interface {
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	Pay(ctx context.Context, appointmentID string, req PaymentRequest) error
	TimeSlots() []string
}

// DefaultBookingService implements BookingService on top of an AppStore.
// Archive and Reminders are optional.
type DefaultBookingService struct {
	Store     *AppStore
	Payments  *payment.Processor
	Archive   AppointmentArchive
	Reminders ReminderScheduler
}

func (s *DefaultBookingService) TimeSlots() []string {
	return slices.Clone(AvailableTimes)
}

// Book appends a scheduled, unpaid therapy appointment for the chosen slot.
func (s *DefaultBookingService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if req.Date == "" || req.Time == "" {
		return nil, ErrIncompleteBooking
	}
	if !slices.Contains(AvailableTimes, req.Time) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimeSlot, req.Time)
	}

	appt := models.Appointment{
		ID:            uuid.New().String(),
		Type:          models.AppointmentTherapy,
		ProviderID:    DefaultProviderID,
		ProviderName:  DefaultProviderName,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      SessionDuration,
		Status:        models.StatusScheduled,
		Price:         SessionPrice,
		SessionType:   models.SessionVideo,
		PaymentStatus: models.PaymentPending,
	}
	if u := s.Store.User(); u != nil {
		appt.ClientID = u.ID
		appt.ClientName = u.Name
	}

	s.Store.appendAppointment(appt)
	logger.Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))

	s.archive(ctx, appt)
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
			logger.Error("Failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return &appt, nil
}

// Pay charges the session price and marks the appointment as paid.
func (s *DefaultBookingService) Pay(ctx context.Context, appointmentID string, req PaymentRequest) error {
	appt, err := s.Store.claimPayment(appointmentID)
	if err != nil {
		return err
	}

	_, err = s.Payments.Pay(ctx, req.Method, payment.Charge{
		Reference:   appt.ID,
		Amount:      appt.Price,
		Currency:    SessionCurrency,
		Phone:       req.Phone,
		Description: fmt.Sprintf("%s session with %s on %s", appt.SessionType, appt.ProviderName, appt.Date),
	})
	if err != nil {
		s.Store.releasePayment(appointmentID)
		return err
	}

	updated, err := s.Store.settlePayment(appointmentID)
	if err != nil {
		// Replaced by a concurrent SetAppointments while the charge was in flight.
		return err
	}
	s.archive(ctx, updated)
	return nil
}

func (s *DefaultBookingService) archive(ctx context.Context, appt models.Appointment) {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.Save(ctx, appt); err != nil {
		utils.GetLogger().Error("Failed to archive appointment", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
