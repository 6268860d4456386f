// File: services/user/signin.go
package user

import (
	"context"
	"fmt"
	"time"

	"laundrify/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued login token stays valid.
const tokenTTL = 24 * time.Hour

// Authenticate checks the credentials and issues a JWT. The token hash is
// cached so the auth middleware can validate without a DB round trip.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil || u.Deleted {
		return nil, utils.NewAuthError("invalid credentials")
	}
	if !u.IsVerified {
		return nil, utils.NewAuthError("account is not verified")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, utils.NewAuthError("invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + u.ID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), cacheKey, utils.HashToken(token), time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token", zap.String("userID", u.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Token: token,
	}, nil
}
