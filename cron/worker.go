package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/mechriz/zen-fit/config"
	"github.com/mechriz/zen-fit/services/tasks"
	"github.com/mechriz/zen-fit/utils"
)

// Notifier delivers a due appointment reminder.
type Notifier interface {
	NotifyReminder(ctx context.Context, p tasks.ReminderPayload) error
}

// LogNotifier records reminders in the service log.
type LogNotifier struct{}

func (LogNotifier) NotifyReminder(_ context.Context, p tasks.ReminderPayload) error {
	utils.GetLogger().Info("Session reminder",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("clientId", p.ClientID),
		zap.String("message", ReminderMessage(p)))
	return nil
}

func ReminderMessage(p tasks.ReminderPayload) string {
	name := p.ClientName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s, your %s session with %s starts at %s on %s.", name, p.SessionType, p.ProviderName, p.Time, p.Date)
}

func RedisQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker starts the reminder worker in the background. Stop it
// with Shutdown on the returned server.
func InitReminderWorker(ctx context.Context, notifier Notifier) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		RedisQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, HandleAppointmentReminder(notifier))

	go monitorRedisConnection(ctx)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Giving up on reminder worker; reminders will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func HandleAppointmentReminder(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("decoding reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := notifier.NotifyReminder(ctx, p); err != nil {
			utils.GetLogger().Error("Failed to deliver reminder", zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue's Redis until ctx is done.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				utils.GetLogger().Warn("Reminder queue Redis unreachable", zap.Error(err))
			}
		}
	}
}
