package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social/internal/service"
	"github.com/MKhiriev/go-social/internal/store"
	"github.com/MKhiriev/go-social/internal/utils"
	"github.com/MKhiriev/go-social/models"
)

func newProfileRequest(principal *models.Principal) *http.Request {
	r := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))
	if principal != nil {
		r = r.WithContext(utils.WithPrincipal(r.Context(), *principal))
	}
	return r
}

func TestProfile_ReturnsPublicUser(t *testing.T) {
	users := &fakeUserService{
		profileFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, alicePrincipal.Email, email)
			return models.User{UserID: 7, FirstName: "Alice", Email: email}, nil
		},
	}
	h := newTestHandler(t, &service.Services{UserService: users})

	rec := serve(http.HandlerFunc(h.profile), newProfileRequest(&alicePrincipal))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"password"`)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "Alice", got.FirstName)
}

func TestProfile_NoPrincipal(t *testing.T) {
	h := newTestHandler(t, &service.Services{UserService: &fakeUserService{}})

	rec := serve(http.HandlerFunc(h.profile), newProfileRequest(nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
}

func TestProfile_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted account", store.ErrUserNotFound, http.StatusNotFound},
		{"storage failure", errors.New("conn reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserService{
				profileFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, &service.Services{UserService: users})

			rec := serve(http.HandlerFunc(h.profile), newProfileRequest(&alicePrincipal))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
