package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"omnispa/config"
	"omnispa/models"
	"omnispa/services/notification"
	"omnispa/services/tasks"
	"omnispa/utils"
)

// StartReminderWorker runs the asynq consumer that delivers scheduled
// appointment reminders. It blocks, so callers run it on its own goroutine.
func StartReminderWorker(notifier notification.Service) error {
	cfg := config.AppConfig
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisReminderQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}
		if err := notifier.SendReminder(payload); err != nil {
			utils.GetLogger().Error("reminder delivery failed",
				zap.String("appointmentID", payload.AppointmentID), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("reminder delivered",
			zap.String("appointmentID", payload.AppointmentID))
		return nil
	})

	return srv.Run(mux)
}
