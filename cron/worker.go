package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"laundrify/config"
	appointmentRepo "laundrify/database/repository/appointment"
	"laundrify/models"
	"laundrify/services/notification"
	"laundrify/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(appts, notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		// The booking may have been cancelled or rescheduled since the task
		// was enqueued; the stored appointment is authoritative.
		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to load appointment %s: %v", p.AppointmentID, err)
			return err
		}
		if appt == nil || appt.Status != models.StatusScheduled {
			log.Printf("[ReminderHandler] ⚠️ Appointment %s no longer scheduled, skipping reminder", p.AppointmentID)
			return nil
		}
		if appt.Date != p.Date || string(appt.TimeSlot) != p.TimeSlot {
			log.Printf("[ReminderHandler] ⚠️ Appointment %s was rescheduled, skipping stale reminder", p.AppointmentID)
			return nil
		}

		log.Printf("[ReminderHandler] ⏰ Triggering reminder for appointment %s (user %s)", p.AppointmentID, p.UserID)

		title := "Upcoming laundry appointment"
		body := fmt.Sprintf("Your appointment at %s is tomorrow, %s (%s).", p.ShopName, p.Date, p.TimeSlot)
		if err := notifSvc.Notify(p.UserID, title, body); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to deliver reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
