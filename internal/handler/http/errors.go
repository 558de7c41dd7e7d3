// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the security middleware. The text is sent as
// the response body of the 401/403.
var (
	// ErrEmptyAuthorizationHeader is reported when a protected path is hit
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is reported when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrAccessDenied is reported for paths whose rule denies all access.
	ErrAccessDenied = errors.New("access denied")

	errInvalidJSON  = errors.New("invalid JSON was passed")
	errBodyTooLarge = errors.New("request body too large")
)
