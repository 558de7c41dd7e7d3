package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/security"
	"github.com/MKhiriev/go-social/internal/service"
	"github.com/MKhiriev/go-social/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

const (
	goodToken    = "good-token"
	expiredToken = "expired-token"
)

var alicePrincipal = models.Principal{Email: "alice@example.com", Authorities: []string{models.DefaultAuthority}}

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; ParseToken defaults to accepting goodToken.
type fakeAuthService struct {
	signUpFn      func(ctx context.Context, user models.User) (models.User, error)
	signInFn      func(ctx context.Context, req models.SignInRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	return f.signUpFn(ctx, user)
}

func (f *fakeAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	return f.signInFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token"}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	switch tokenString {
	case goodToken:
		return models.Token{SignedString: tokenString, Principal: alicePrincipal}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	default:
		return models.Token{}, service.ErrTokenIsInvalid
	}
}

type fakeUserService struct {
	profileFn func(ctx context.Context, email string) (models.User, error)
}

func (f *fakeUserService) Profile(ctx context.Context, email string) (models.User, error) {
	return f.profileFn(ctx, email)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return *config.Defaults()
}

// newTestHandler builds a Handler over the default rules and CORS policy.
// Nil services are replaced with fakes.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return newTestHandlerWith(t, svcs, nil)
}

// newTestHandlerWith is newTestHandler with a hook to adjust the config
// before rules are built.
func newTestHandlerWith(t *testing.T, svcs *service.Services, mutate func(cfg *config.StructuredConfig)) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}

	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rules, err := security.NewRuleSetFromConfig(cfg.Security)
	require.NoError(t, err)

	return NewHandler(svcs, rules, cfg, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	cfg := testConfig()
	cfg.Server.RequestTimeout = 0
	log := logger.Nop()

	h := NewHandler(svcs, nil, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, cfg.CORS, h.cors)
	assert.Equal(t, "/api", h.prefixes.APIPrefix)
	assert.Zero(t, h.requestTimeout)
}
