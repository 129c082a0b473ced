package models

import (
	"errors"
	"fmt"
)

var ErrInvalidAppointment = errors.New("invalid appointment")

// AppointmentType distinguishes therapy from personal-training sessions.
type AppointmentType string

const (
	AppointmentTherapy  AppointmentType = "therapy"
	AppointmentTraining AppointmentType = "training"
)

func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentTherapy, AppointmentTraining:
		return true
	}
	return false
}

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransition reports whether an appointment may move from s to next.
// Only scheduled appointments change state; the other states are final.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusScheduled:
		switch next {
		case StatusCompleted, StatusCancelled, StatusNoShow:
			return true
		}
		return false
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return false
	}
	return false
}

type SessionType string

const (
	SessionVideo SessionType = "video"
	SessionPhone SessionType = "phone"
	SessionChat  SessionType = "chat"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionVideo, SessionPhone, SessionChat:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Appointment links a client with a provider for one session.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	Type          AppointmentType   `bson:"type" json:"type"`
	ProviderID    string            `bson:"providerId" json:"providerId"`
	ProviderName  string            `bson:"providerName" json:"providerName"`
	ClientID      string            `bson:"clientId" json:"clientId"`
	ClientName    string            `bson:"clientName" json:"clientName"`
	Date          string            `bson:"date" json:"date"`         // YYYY-MM-DD, compared as a plain string
	Time          string            `bson:"time" json:"time"`         // e.g. "10:00 AM"
	Duration      int               `bson:"duration" json:"duration"` // minutes
	Status        AppointmentStatus `bson:"status" json:"status"`
	Price         float64           `bson:"price" json:"price"` // KSh
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	SessionType   SessionType       `bson:"sessionType" json:"sessionType"`
	PaymentStatus PaymentStatus     `bson:"paymentStatus" json:"paymentStatus"`
}

// Validate checks the enum fields. Session type and payment status may be
// left empty.
func (a Appointment) Validate() error {
	switch {
	case !a.Type.Valid():
		return fmt.Errorf("%w %q: type %q", ErrInvalidAppointment, a.ID, a.Type)
	case !a.Status.Valid():
		return fmt.Errorf("%w %q: status %q", ErrInvalidAppointment, a.ID, a.Status)
	case a.SessionType != "" && !a.SessionType.Valid():
		return fmt.Errorf("%w %q: session type %q", ErrInvalidAppointment, a.ID, a.SessionType)
	case a.PaymentStatus != "" && !a.PaymentStatus.Valid():
		return fmt.Errorf("%w %q: payment status %q", ErrInvalidAppointment, a.ID, a.PaymentStatus)
	}
	return nil
}
