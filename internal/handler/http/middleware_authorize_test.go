package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/service"
	"github.com/MKhiriev/go-social/internal/utils"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name          string
		fallback      string
		method        string
		path          string
		withPrincipal bool
		failure       error
		wantStatus    int
		wantBody      string
	}{
		{name: "auth namespace is open", method: http.MethodPost, path: "/auth/signin", wantStatus: http.StatusOK},
		{name: "auth namespace ignores stale token", method: http.MethodPost, path: "/auth/signin", failure: service.ErrTokenIsExpired, wantStatus: http.StatusOK},
		{name: "api without principal", method: http.MethodGet, path: "/api/users/profile", wantStatus: http.StatusUnauthorized, wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "api with expired token", method: http.MethodGet, path: "/api/users/profile", failure: service.ErrTokenIsExpired, wantStatus: http.StatusUnauthorized, wantBody: service.ErrTokenIsExpired.Error()},
		{name: "api with principal", method: http.MethodGet, path: "/api/users/profile", withPrincipal: true, wantStatus: http.StatusOK},
		{name: "api root itself", method: http.MethodGet, path: "/api", wantStatus: http.StatusUnauthorized},
		{name: "dot segments cannot escape api", method: http.MethodGet, path: "/auth/../api/version", wantStatus: http.StatusUnauthorized},
		{name: "options always open", method: http.MethodOptions, path: "/api/users/profile", wantStatus: http.StatusOK},
		{name: "fallback permit", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "fallback deny", fallback: config.AccessDeny, method: http.MethodGet, path: "/healthz", withPrincipal: true, wantStatus: http.StatusForbidden, wantBody: ErrAccessDenied.Error()},
		{name: "fallback authenticated", fallback: config.AccessAuthenticated, method: http.MethodGet, path: "/healthz", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWith(t, nil, func(cfg *config.StructuredConfig) {
				if tt.fallback != "" {
					cfg.Security.FallbackAccess = tt.fallback
				}
			})

			req := injectNopLogger(httptest.NewRequest(tt.method, "/", nil))
			req.URL.Path = tt.path
			ctx := req.Context()
			if tt.withPrincipal {
				ctx = utils.WithPrincipal(ctx, alicePrincipal)
			}
			if tt.failure != nil {
				ctx = utils.WithAuthFailure(ctx, tt.failure)
			}

			rec := serve(h.authorize(okHandler), req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
