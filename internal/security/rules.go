// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"fmt"
	"net/http"
	"strings"
)

// Access is the outcome a rule assigns to the requests it matches.
type Access int

const (
	// Authenticated requires a valid principal on the request.
	// It is the zero value so an unset access fails closed.
	Authenticated Access = iota
	// Permit lets the request through with or without a principal.
	Permit
	// Deny rejects the request regardless of the principal.
	Deny
)

func (a Access) String() string {
	switch a {
	case Permit:
		return "permit"
	case Authenticated:
		return "authenticated"
	case Deny:
		return "deny"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

func (a Access) valid() bool {
	return a == Permit || a == Authenticated || a == Deny
}

// ParseAccess converts the textual form used in configuration
// ("permit", "authenticated", "deny") to an [Access].
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permit":
		return Permit, nil
	case "authenticated":
		return Authenticated, nil
	case "deny":
		return Deny, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccess, s)
	}
}

// Rule binds a path pattern, optionally restricted to one HTTP method, to an
// access decision. An empty Method matches every method.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

func (r Rule) String() string {
	method := r.Method
	if method == "" {
		method = "*"
	}
	return fmt.Sprintf("%s %s -> %s", method, r.Pattern, r.Access)
}

// Decision is the result of evaluating a request against a [RuleSet].
type Decision struct {
	// Rule is the rule that matched. Zero when Matched is false.
	Rule Rule
	// Access is the effective access for the request.
	Access Access
	// Matched is false when no rule applied and the set failed closed.
	Matched bool
}

type compiledRule struct {
	Rule
	pattern pathPattern
}

// RuleSet is an ordered, immutable list of rules. It is safe for concurrent use.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet compiles rules in the given order.
func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		if !r.Access.valid() {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Pattern, ErrInvalidAccess)
		}
		p, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		r.Method = strings.ToUpper(r.Method)
		compiled = append(compiled, compiledRule{Rule: r, pattern: p})
	}

	return &RuleSet{rules: compiled}, nil
}

// Decide returns the decision of the first rule matching method and
// requestPath. The path is cleaned first, so "/auth/../api/x" is evaluated as
// "/api/x". When nothing matches the request requires authentication.
func (s *RuleSet) Decide(method, requestPath string) Decision {
	cleaned := cleanPath(requestPath)
	method = strings.ToUpper(method)

	for _, r := range s.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if r.pattern.match(cleaned) {
			return Decision{Rule: r.Rule, Access: r.Access, Matched: true}
		}
	}

	return Decision{Access: Authenticated}
}

// Rules returns a copy of the rules in evaluation order.
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Rule
	}
	return out
}

// DefaultRules builds the standard table:
//
//	OPTIONS /**            permit
//	<authPrefix>/**        permit
//	<apiPrefix>/**         authenticated
//	/**                    fallback
//
// CORS preflights are always let through so browsers can negotiate before
// any credentials are sent.
func DefaultRules(authPrefix, apiPrefix string, fallback Access) []Rule {
	return []Rule{
		{Method: http.MethodOptions, Pattern: "/**", Access: Permit},
		{Pattern: subtreeOf(authPrefix), Access: Permit},
		{Pattern: subtreeOf(apiPrefix), Access: Authenticated},
		{Pattern: "/**", Access: fallback},
	}
}

func subtreeOf(prefix string) string {
	return strings.TrimRight(prefix, "/") + "/**"
}
