// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing or malformed token settings
	// (for example, an empty sign key or a non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCORSConfigs indicates a CORS policy that browsers would reject
	// or that is unsafe (credentials combined with a wildcard origin).
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidSecurityConfigs indicates malformed namespaces or an unknown
	// fallback access value.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
