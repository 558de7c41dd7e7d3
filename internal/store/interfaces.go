package store

import (
	"context"

	"github.com/MKhiriev/go-social/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated id and
	// creation time. A taken email yields [ErrEmailAlreadyUsed].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
