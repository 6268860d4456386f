// File: services/user/admin.go
package user

import (
	"fmt"

	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers returns every non-deleted account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns any account by id.
func (s *DefaultUserService) GetUser(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return u, nil
}

// AdminUpdateUser applies a partial update to any account. An admin cannot
// demote their own role; that would lock them out mid-session.
func (s *DefaultUserService) AdminUpdateUser(actorID, userID string, fields map[string]any) (*models.User, error) {
	updateFields := map[string]any{}
	for _, key := range []string{"name", "email", "role", "isVerified", "profilePicture"} {
		if v, ok := fields[key]; ok {
			updateFields[key] = v
		}
	}
	if len(updateFields) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	if role, ok := updateFields["role"]; ok {
		roleStr, _ := role.(string)
		if roleStr != models.RoleUser && roleStr != models.RoleAdmin {
			return nil, utils.NewValidationError("invalid role %q", roleStr)
		}
		if userID == actorID && roleStr != models.RoleAdmin {
			return nil, utils.NewValidationError("cannot change your own admin role")
		}
	}

	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// AdminDeleteUser soft-deletes an account. Self-deletion is refused.
func (s *DefaultUserService) AdminDeleteUser(actorID, userID string) error {
	if userID == actorID {
		return utils.NewValidationError("cannot delete your own admin account")
	}
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	if err := s.Repo.SoftDelete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// CreateAdmin provisions a pre-verified admin account.
func (s *DefaultUserService) CreateAdmin(in RegistrationInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, utils.NewValidationError("name, email and password are required")
	}
	if len(in.Password) < 8 {
		return nil, utils.NewValidationError("password must be at least 8 characters long")
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Password:      string(hash),
		Role:          models.RoleAdmin,
		IsVerified:    true,
		Notifications: []models.Notification{},
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}
	return u, nil
}
