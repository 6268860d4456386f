// File: services/user/forgotPass.go
package user

import (
	"fmt"
	"time"

	"laundrify/config"
	"laundrify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is how long a password reset link stays valid.
const resetTokenTTL = time.Hour

// ForgotPassword issues a reset token and mails the reset link.
func (s *DefaultUserService) ForgotPassword(email string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return utils.NewNotFoundError("account not found")
	}

	resetToken := uuid.New().String()
	if err := s.Repo.UpdateSetDocument(u.ID, map[string]any{
		"resetToken":       resetToken,
		"resetTokenExpiry": time.Now().Add(resetTokenTTL),
	}); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.BaseURL, resetToken)
	body := fmt.Sprintf("You requested a password reset. Click the link below to reset your password:\n\n%s", resetURL)
	if err := s.Mailer.Send(email, "Password Reset Request", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword redeems a reset token for a new password.
func (s *DefaultUserService) ResetPassword(resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return utils.NewValidationError("resetToken and newPassword are required")
	}
	if len(newPassword) < 8 {
		return utils.NewValidationError("password must be at least 8 characters long")
	}

	u, err := s.Repo.GetByResetToken(resetToken)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if u == nil || time.Now().After(u.ResetTokenExpiry) {
		return utils.NewValidationError("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(u.ID, map[string]any{
		"password":         string(hash),
		"resetToken":       "",
		"resetTokenExpiry": time.Time{},
	}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
