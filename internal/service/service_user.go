package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/store"
	"github.com/MKhiriev/go-social/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

// Profile returns the user behind email with the password hash stripped.
func (s *userService) Profile(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Public(), nil
}
