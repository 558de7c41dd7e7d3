// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration has no HTTP address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoAccessRules is returned by NewHandlers when no rule set is given;
	// the HTTP handler never runs unprotected.
	errNoAccessRules = errors.New("no access rules are configured")
)
