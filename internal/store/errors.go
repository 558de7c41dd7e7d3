// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Callers match them with [errors.Is].
var (
	// ErrEmailAlreadyUsed is returned by CreateUser when the email is taken.
	ErrEmailAlreadyUsed = errors.New("email already used with another account")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")
)

// Infrastructure errors wrapping driver failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDriver is returned by NewDB for a driver other than
	// pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
