// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/http"
	"time"
)

// Access values accepted by Security.FallbackAccess.
const (
	AccessPermit        = "permit"
	AccessAuthenticated = "authenticated"
	AccessDeny          = "deny"
)

// Database drivers accepted by DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults returns the configuration the server runs with when no other
// source sets a value. The CORS block reproduces the policy the web clients
// were built against.
func Defaults() *StructuredConfig {
	allowCredentials := true

	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-social",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS: CORS{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:4000",
				"http://localhost:4200",
				"https://zosh-social.vercel.app",
				"https://socialmediaapp-nikhil.netlify.app",
			},
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
				http.MethodOptions,
				http.MethodPatch,
			},
			AllowedHeaders: []string{
				"Origin",
				"Content-Type",
				"Accept",
				"Authorization",
				"Access-Control-Allow-Origin",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"X-Requested-With",
			},
			ExposedHeaders: []string{
				"Authorization",
				"Access-Control-Allow-Origin",
				"Access-Control-Allow-Credentials",
			},
			AllowCredentials: &allowCredentials,
			MaxAge:           3600,
		},
		Security: Security{
			AuthPrefix:     "/auth",
			APIPrefix:      "/api",
			FallbackAccess: AccessPermit,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
