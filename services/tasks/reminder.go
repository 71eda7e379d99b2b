package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"omnispa/config"
	"omnispa/models"
	"omnispa/utils"
)

const TypeReminderSend = "reminder:send"

// AsynqScheduler enqueues appointment reminders on the Redis-backed task
// queue, scheduled a configurable lead time before the appointment starts.
type AsynqScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewAsynqScheduler() *AsynqScheduler {
	cfg := config.AppConfig
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderQueueDB,
	})
	return &AsynqScheduler{
		client: client,
		lead:   time.Duration(cfg.ReminderLeadMinutes) * time.Minute,
	}
}

func (s *AsynqScheduler) ScheduleReminder(payload models.ReminderPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	sendAt := payload.StartTime.Add(-s.lead)
	if !sendAt.After(time.Now()) {
		// Booked inside the lead window; a reminder now would just duplicate
		// the confirmation email.
		utils.GetLogger().Debug("skipping reminder for near-term appointment",
			zap.String("appointmentID", payload.AppointmentID))
		return nil
	}

	task := asynq.NewTask(TypeReminderSend, data)
	info, err := s.client.Enqueue(task, asynq.ProcessAt(sendAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Info("reminder scheduled",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("taskID", info.ID),
		zap.Time("sendAt", sendAt))
	return nil
}

func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
