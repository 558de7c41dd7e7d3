// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past this length.
const maxPasswordBytes = 72

//go:generate mockgen -source=password.go -destination=../mock/security_mock.go -package=mock

// PasswordEncoder hashes and verifies user passwords.
type PasswordEncoder interface {
	// Encode returns a salted hash of raw. Two calls with the same input
	// produce different hashes.
	Encode(raw string) (string, error)
	// Matches reports whether raw hashes to encoded.
	Matches(raw, encoded string) bool
}

type bcryptEncoder struct {
	cost int
}

// NewBCryptEncoder returns a [PasswordEncoder] backed by bcrypt. A zero cost
// selects bcrypt.DefaultCost.
func NewBCryptEncoder(cost int) (PasswordEncoder, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptEncoder{cost: cost}, nil
}

func (e *bcryptEncoder) Encode(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}
	if len(raw) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (e *bcryptEncoder) Matches(raw, encoded string) bool {
	if raw == "" || encoded == "" || len(raw) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
