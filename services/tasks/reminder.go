// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"laundrify/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// Reminders fire this long before the slot starts. Appointments booked
// closer than that get the reminder immediately.
const reminderLead = 24 * time.Hour

// NewReminderTask wraps a reminder payload into a delayed asynq task.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the shared
// asynq client. Satisfies the booking service's ReminderScheduler.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(appt models.Appointment, shopName string) error {
	if s.Client == nil {
		return fmt.Errorf("asynq client is not configured")
	}

	start, err := models.SlotStartTime(appt.Date, appt.TimeSlot)
	if err != nil {
		return fmt.Errorf("cannot derive reminder time: %w", err)
	}
	fireAt := start.Add(-reminderLead)

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		ShopName:      shopName,
		Date:          appt.Date,
		TimeSlot:      string(appt.TimeSlot),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
