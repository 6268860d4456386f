// File: services/user/signup.go
package user

import (
	"fmt"

	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an unverified account and sends a verification OTP. A
// repeat registration against an unverified account refreshes its password
// and re-sends the OTP; a verified account rejects.
func (s *DefaultUserService) Register(in RegistrationInput) error {
	logger := utils.GetLogger()

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return utils.NewValidationError("name, email and password are required")
	}
	if len(in.Password) < 8 {
		return utils.NewValidationError("password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		if existing.IsVerified {
			return utils.NewConflictError("email already exists")
		}
		// Unverified account: refresh credentials and re-send the OTP.
		if err := s.Repo.UpdateSetDocument(existing.ID, map[string]any{
			"name":     in.Name,
			"password": string(hash),
		}); err != nil {
			return fmt.Errorf("failed to refresh unverified account: %w", err)
		}
		return utils.InitiateEmailOTP(s.Mailer, in.Email)
	}

	u := &models.User{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Password:      string(hash),
		Role:          models.RoleUser,
		Notifications: []models.Notification{},
	}
	if err := s.Repo.Create(u); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	logger.Info("Registered new account", zap.String("userID", u.ID))

	return utils.InitiateEmailOTP(s.Mailer, in.Email)
}

// VerifyOTP confirms the emailed code and marks the account verified.
func (s *DefaultUserService) VerifyOTP(email, otp string) (*models.User, error) {
	if email == "" || otp == "" {
		return nil, utils.NewValidationError("email and otp are required")
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return nil, utils.NewNotFoundError("account not found")
	}

	if err := utils.VerifyEmailOTPRecord(email, otp); err != nil {
		return nil, utils.NewValidationError("invalid or expired OTP")
	}

	if err := s.Repo.UpdateSetDocument(u.ID, map[string]any{"isVerified": true}); err != nil {
		return nil, fmt.Errorf("failed to mark account verified: %w", err)
	}
	u.IsVerified = true
	return u, nil
}

// ResendOTP issues a fresh verification code for an unverified account.
func (s *DefaultUserService) ResendOTP(email string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return utils.NewNotFoundError("account not found")
	}
	if u.IsVerified {
		return utils.NewInvalidStateError("account is already verified")
	}
	return utils.InitiateEmailOTP(s.Mailer, email)
}
