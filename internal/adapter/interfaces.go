// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-social HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. Non-2xx
// responses are mapped by mapHTTPError onto the sentinel errors of this
// package so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-social/models"
)

// ServerAdapter talks to a go-social server on behalf of one user session.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before sign-up or sign-in.
	Token() string

	// SignUp registers user and stores the issued token.
	SignUp(ctx context.Context, user models.User) (models.AuthResponse, error)

	// SignIn exchanges credentials for a token and stores it.
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)

	// Profile returns the account of the token holder.
	Profile(ctx context.Context) (models.User, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
