// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"fmt"

	"github.com/MKhiriev/go-social/internal/config"
)

// NewRuleSetFromConfig builds the default rule table for the configured
// namespaces and fallback access.
func NewRuleSetFromConfig(cfg config.Security) (*RuleSet, error) {
	fallback, err := ParseAccess(cfg.FallbackAccess)
	if err != nil {
		return nil, fmt.Errorf("fallback access: %w", err)
	}

	return NewRuleSet(DefaultRules(cfg.AuthPrefix, cfg.APIPrefix, fallback)...)
}
