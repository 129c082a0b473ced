package models

import (
	"errors"
	"testing"
)

func TestAppointmentValidate(t *testing.T) {
	base := Appointment{ID: "a1", Type: AppointmentTherapy, Status: StatusScheduled}
	cases := []struct {
		name   string
		mutate func(*Appointment)
		ok     bool
	}{
		{"minimal", func(*Appointment) {}, true},
		{"full", func(a *Appointment) { a.SessionType = SessionChat; a.PaymentStatus = PaymentRefunded }, true},
		{"unknown type", func(a *Appointment) { a.Type = "massage" }, false},
		{"missing status", func(a *Appointment) { a.Status = "" }, false},
		{"unknown session type", func(a *Appointment) { a.SessionType = "in-person" }, false},
		{"unknown payment status", func(a *Appointment) { a.PaymentStatus = "partial" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := base
			tc.mutate(&a)
			err := a.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidAppointment) {
				t.Fatalf("got %v want ErrInvalidAppointment", err)
			}
		})
	}
}
