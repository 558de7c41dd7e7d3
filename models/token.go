// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the service.
//
// Besides the registered claims it carries the user's email and a
// comma-separated list of authorities, the same shape browsers already hold
// for existing sessions.
type Claims struct {
	Email       string `json:"email"`
	Authorities string `json:"authorities,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Principal is the identity resolved from the claims.
	Principal Principal `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// JoinAuthorities renders authorities the way they are stored in the
// "authorities" claim.
func JoinAuthorities(authorities []string) string {
	return strings.Join(authorities, ",")
}

// SplitAuthorities parses the "authorities" claim. Blank entries are dropped.
func SplitAuthorities(claim string) []string {
	if strings.TrimSpace(claim) == "" {
		return nil
	}

	parts := strings.Split(claim, ",")
	authorities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			authorities = append(authorities, p)
		}
	}

	return authorities
}
