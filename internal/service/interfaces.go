package service

import (
	"context"

	"github.com/MKhiriev/go-social/models"
)

// AuthService registers users, checks credentials and issues/validates tokens.
type AuthService interface {
	// SignUp stores a new user with an encoded password.
	SignUp(ctx context.Context, user models.User) (models.User, error)
	// SignIn returns the user matching the credentials or ErrInvalidCredentials.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves user records to authenticated callers.
type UserService interface {
	Profile(ctx context.Context, email string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
