package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/mechriz/zen-fit/models"
)

const TypeAppointmentReminder = "appointment:reminder"

// SessionTimeLayout matches an appointment's date and time fields joined by a space.
const SessionTimeLayout = "2006-01-02 3:04 PM"

// SessionZone is the timezone appointment slots are offered in.
var SessionZone = time.FixedZone("EAT", 3*60*60)

type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	ProviderName  string `json:"providerName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	SessionType   string `json:"sessionType"`
}

// SessionStart parses the start of an appointment in SessionZone.
func SessionStart(a models.Appointment) (time.Time, error) {
	t, err := time.ParseInLocation(SessionTimeLayout, a.Date+" "+a.Time, SessionZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing session start of appointment %s: %w", a.ID, err)
	}
	return t, nil
}

// NewAppointmentReminderTask builds a reminder that fires lead before the
// session starts. Reminders whose fire time has passed run immediately.
func NewAppointmentReminderTask(a models.Appointment, lead time.Duration, now time.Time) (*asynq.Task, []asynq.Option, error) {
	start, err := SessionStart(a)
	if err != nil {
		return nil, nil, err
	}
	b, err := json.Marshal(ReminderPayload{
		AppointmentID: a.ID,
		ClientID:      a.ClientID,
		ClientName:    a.ClientName,
		ProviderName:  a.ProviderName,
		Date:          a.Date,
		Time:          a.Time,
		SessionType:   string(a.SessionType),
	})
	if err != nil {
		return nil, nil, err
	}

	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.TaskID("reminder:" + a.ID), asynq.MaxRetry(3)}
	if fireAt := start.Add(-lead); fireAt.After(now) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on an asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, a models.Appointment) error {
	task, opts, err := NewAppointmentReminderTask(a, s.Lead, time.Now())
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing reminder for appointment %s: %w", a.ID, err)
	}
	return nil
}
