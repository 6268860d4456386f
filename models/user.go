package models

import "time"

// Roles a platform account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform account.
type User struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Email          string         `bson:"email" json:"email"`
	Password       string         `bson:"password" json:"-"` // bcrypt hash
	Role           string         `bson:"role" json:"role"`
	ProfilePicture string         `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Notifications  []Notification `bson:"notifications" json:"notifications,omitempty"`
	Deleted        bool           `bson:"deleted" json:"-"`
	IsVerified     bool           `bson:"isVerified" json:"isVerified"`

	// Password reset state. Cleared once the reset completes.
	ResetToken       string    `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry time.Time `bson:"resetTokenExpiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the public projection embedded in reviews and admin lists.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Summary strips a user down to its public fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
