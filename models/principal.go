// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// DefaultAuthority is granted to every user issued a token by this service.
const DefaultAuthority = "ROLE_USER"

// Principal is the authenticated identity attached to a request once its
// bearer token has been validated.
type Principal struct {
	// Email identifies the user (JWT "email" claim).
	Email string `json:"email"`

	// Authorities lists the granted roles (JWT "authorities" claim).
	Authorities []string `json:"authorities,omitempty"`
}

// HasAuthority reports whether p was granted authority.
func (p Principal) HasAuthority(authority string) bool {
	return slices.Contains(p.Authorities, authority)
}
