package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-social/internal/config"
	"github.com/MKhiriev/go-social/internal/logger"
	"github.com/MKhiriev/go-social/internal/utils"
	"github.com/MKhiriev/go-social/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	authPrefix string
	apiPrefix  string

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the server at
// cfg.Adapter.HTTPAddress. Endpoint paths follow cfg.Security so a client
// and a server sharing one config agree on the namespaces.
func NewHTTPServerAdapter(cfg config.StructuredConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.Adapter.RequestTimeout),
		authPrefix: strings.TrimRight(cfg.Security.AuthPrefix, "/"),
		apiPrefix:  strings.TrimRight(cfg.Security.APIPrefix, "/"),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignUp posts user to <auth>/signup.
func (h *httpServerAdapter) SignUp(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, h.authPrefix+"/signup", user)
}

// SignIn posts req to <auth>/signin.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, h.authPrefix+"/signin", req)
}

// authenticate posts body to path and stores the issued token. The
// Authorization response header wins over the token in the JSON body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
		authResponse.Token = token
	}
	if authResponse.Token == "" {
		return models.AuthResponse{}, ErrNoTokenIssued
	}

	h.SetToken(authResponse.Token)
	h.logger.Debug().Str("path", path).Msg("token stored")

	return authResponse, nil
}

// Profile gets <api>/users/profile with the stored token.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.WithToken(h.token).
		SetContext(ctx).
		SetResult(&user).
		Get(h.apiPrefix + "/users/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Version gets <api>/version with the stored token.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.WithToken(h.token).
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(h.apiPrefix + "/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("http %d: unexpected version response", resp.StatusCode())
	}

	return strings.TrimSpace(resp.String()), nil
}
