package user

import (
	userRepo "laundrify/database/repository/user"
	"laundrify/models"
	"laundrify/utils"
)

// RegistrationInput is the sign-up payload.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are left
// untouched.
type ProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService manages accounts, verification and profiles.
type UserService interface {
	// Registration and verification.
	Register(in RegistrationInput) error
	VerifyOTP(email, otp string) (*models.User, error)
	ResendOTP(email string) error

	// Authentication.
	Authenticate(email, password string) (*AuthResponse, error)

	// Password reset.
	ForgotPassword(email string) error
	ResetPassword(resetToken, newPassword string) error

	// Profile.
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, in ProfileUpdate) (*models.User, error)

	// In-app notifications.
	Notifications(userID string) ([]models.Notification, error)
	MarkNotificationsRead(userID string, ids []string) error

	// Admin.
	GetAllUsers() ([]models.User, error)
	GetUser(userID string) (*models.User, error)
	AdminUpdateUser(actorID, userID string, fields map[string]any) (*models.User, error)
	AdminDeleteUser(actorID, userID string) error
	CreateAdmin(in RegistrationInput) (*models.User, error)

	// GetSummary satisfies the booking service's user directory.
	GetSummary(userID string) (*models.UserSummary, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Mailer utils.Mailer
}
