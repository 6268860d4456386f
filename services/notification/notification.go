// File: services/notification/notification.go
package notification

import (
	"fmt"
	"time"

	userRepo "laundrify/database/repository/user"
	"laundrify/models"

	"github.com/google/uuid"
)

// NotificationService delivers in-app notifications to user accounts.
type NotificationService interface {
	Notify(userID, title, message string) error
}

// DefaultNotificationService stores notifications on the user document.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) Notify(userID, title, message string) error {
	n := models.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.Users.PushNotification(userID, n); err != nil {
		return fmt.Errorf("failed to deliver notification to user %s: %w", userID, err)
	}
	return nil
}
