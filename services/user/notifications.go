// File: services/user/notifications.go
package user

import (
	"fmt"

	"laundrify/models"
)

// Notifications returns the user's in-app notifications, newest first.
func (s *DefaultUserService) Notifications(userID string) ([]models.Notification, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	// Stored in append order; reverse for newest-first display.
	out := make([]models.Notification, 0, len(u.Notifications))
	for i := len(u.Notifications) - 1; i >= 0; i-- {
		out = append(out, u.Notifications[i])
	}
	return out, nil
}

// MarkNotificationsRead flags the given notifications (or all of them, when
// ids is empty) as read.
func (s *DefaultUserService) MarkNotificationsRead(userID string, ids []string) error {
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}
	if len(ids) == 0 {
		if err := s.Repo.MarkAllNotificationsRead(userID); err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}
		return nil
	}
	if err := s.Repo.MarkNotificationsRead(userID, ids); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
