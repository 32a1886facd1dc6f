package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/door2door/taskmarket-api/internal/core/domain"
	"github.com/door2door/taskmarket-api/internal/core/ports"
)

// ProfileService implements profile viewing and editing for the caller's own
// account, resolved by email equality.
type ProfileService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

// Update sets name and phone on the account matching email. A missing
// account is an explicit rejection, not a silent no-op.
func (s *ProfileService) Update(ctx context.Context, email, name, phone string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	user.Name = name
	user.Phone = phone

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to update profile")
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("profile updated")
	return user, nil
}

// Get resolves the caller's own account.
func (s *ProfileService) Get(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}
