package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/mock"
	"github.com/MKhiriev/go-social/internal/store"
	"github.com/MKhiriev/go-social/models"
)

func TestUserService_Profile_StripsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").
		Return(models.User{UserID: 1, Email: "a@b.co", Password: "hash", FirstName: "A"}, nil)

	user, err := svc.Profile(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Equal(t, "A", user.FirstName)
}

func TestUserService_Profile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Profile(context.Background(), "gone@b.co")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Profile_EmptyEmail(t *testing.T) {
	svc := NewUserService(mock.NewMockUserRepository(gomock.NewController(t)), logger.Nop())

	_, err := svc.Profile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := &store.Repositories{UserRepository: mock.NewMockUserRepository(ctrl)}

	svcs, err := NewServices(repos, mock.NewMockPasswordEncoder(ctrl), config.App{Version: "1"}, unknownBuild, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.UserService)
	assert.NotNil(t, svcs.AppInfoService)

	_, err = NewServices(repos, nil, config.App{}, unknownBuild, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
