// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if err := cfg.CORS.validate(); err != nil {
		return err
	}

	return cfg.Security.validate()
}

func (c CORS) validate() error {
	if len(c.AllowedOrigins) == 0 || len(c.AllowedMethods) == 0 {
		return ErrInvalidCORSConfigs
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("%w: negative max age", ErrInvalidCORSConfigs)
	}
	for _, origin := range c.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("%w: empty origin", ErrInvalidCORSConfigs)
		}
		// Browsers refuse credentialed responses for a wildcard origin.
		if c.Credentials() && strings.Contains(origin, "*") {
			return fmt.Errorf("%w: wildcard origin %q with credentials", ErrInvalidCORSConfigs, origin)
		}
	}

	return nil
}

func (s Security) validate() error {
	for _, prefix := range []string{s.AuthPrefix, s.APIPrefix} {
		if !strings.HasPrefix(prefix, "/") || strings.Contains(prefix, "*") {
			return fmt.Errorf("%w: bad namespace %q", ErrInvalidSecurityConfigs, prefix)
		}
		if path.Clean(prefix) == "/" {
			return fmt.Errorf("%w: namespace %q covers every path", ErrInvalidSecurityConfigs, prefix)
		}
	}

	// The auth rule is evaluated first and permits everything below it, so
	// the two namespaces must not overlap.
	auth, api := path.Clean(s.AuthPrefix), path.Clean(s.APIPrefix)
	if auth == api || isSubpath(auth, api) || isSubpath(api, auth) {
		return fmt.Errorf("%w: namespaces %q and %q overlap", ErrInvalidSecurityConfigs, s.AuthPrefix, s.APIPrefix)
	}
	if !slices.Contains([]string{AccessPermit, AccessAuthenticated, AccessDeny}, s.FallbackAccess) {
		return fmt.Errorf("%w: unknown fallback access %q", ErrInvalidSecurityConfigs, s.FallbackAccess)
	}

	return nil
}

// isSubpath reports whether child lies below parent by whole path segments.
func isSubpath(parent, child string) bool {
	return strings.HasPrefix(child, parent+"/")
}

// ValidateAdapter checks the settings the API client needs.
func (cfg *StructuredConfig) ValidateAdapter() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
