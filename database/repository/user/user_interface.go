package userRepo

import (
	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByResetToken(token string) (*models.User, error)
	GetAll(includeDeleted bool) ([]models.User, error)
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error

	// Embedded notification operations.
	PushNotification(userID string, n models.Notification) error
	MarkNotificationsRead(userID string, notificationIDs []string) error
	MarkAllNotificationsRead(userID string) error
}
