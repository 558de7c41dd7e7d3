// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import "errors"

var (
	// ErrInvalidPattern is returned by [NewRuleSet] for an empty pattern, a
	// pattern that does not start with "/", or a misplaced "**".
	ErrInvalidPattern = errors.New("invalid path pattern")

	// ErrInvalidAccess is returned for an access value outside
	// Permit/Authenticated/Deny.
	ErrInvalidAccess = errors.New("invalid access value")

	// ErrPasswordTooLong is returned by the bcrypt encoder for plaintexts over
	// 72 bytes, which bcrypt would otherwise truncate.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrEmptyPassword is returned when encoding an empty plaintext.
	ErrEmptyPassword = errors.New("empty password")
)
