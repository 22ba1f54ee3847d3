package reminder

import (
	"context"
	"encoding/json"
	"time"

	"tailortalk/config"
	"tailortalk/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// Scheduler enqueues appointment reminders. Enqueueing is best-effort:
// a failure must never fail the booking that triggered it.
type Scheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error
	Close() error
}

// AsynqScheduler queues reminder tasks on Redis for the cron worker.
type AsynqScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewAsynqScheduler() *AsynqScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleAppointmentReminder queues a reminder to fire shortly before
// the appointment starts. Appointments starting too soon for the lead
// window get no reminder.
func (s *AsynqScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return err
	}

	fireAt := start.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		Title:         appt.Title,
		Date:          appt.Date,
		Time:          appt.Time,
		FireDate:      fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
