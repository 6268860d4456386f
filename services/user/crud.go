// File: services/user/crud.go
package user

import (
	"fmt"

	"laundrify/models"
	"laundrify/utils"
)

// GetProfile returns the user's own account document.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if u == nil || u.Deleted {
		return nil, utils.NewNotFoundError("account not found")
	}
	return u, nil
}

// UpdateProfile updates the editable profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, in ProfileUpdate) (*models.User, error) {
	updateFields := map[string]any{}
	if in.Name != "" {
		updateFields["name"] = in.Name
	}
	if in.ProfilePicture != "" {
		updateFields["profilePicture"] = in.ProfilePicture
	}
	if len(updateFields) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// GetSummary resolves a user's public projection.
func (s *DefaultUserService) GetSummary(userID string) (*models.UserSummary, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, err
	}
	sum := u.Summary()
	return &sum, nil
}
