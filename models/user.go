// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered member of the social network.
// Password holds the bcrypt hash once the user has been persisted and is
// never serialized back to clients.
type User struct {
	// UserID is the database identifier.
	UserID int64 `json:"id"`

	FirstName string `json:"first_name" validate:"max=255"`
	LastName  string `json:"last_name" validate:"max=255"`

	// Email is unique across users and doubles as the login name and the
	// JWT subject.
	Email string `json:"email" validate:"required,email,max=320"`

	// Password is the raw password on signup/signin payloads and the
	// encoded hash everywhere else.
	Password string `json:"password,omitempty" validate:"required"`

	Gender string `json:"gender,omitempty" validate:"max=32"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}
