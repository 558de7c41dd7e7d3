// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"fmt"
	"path"
	"strings"
)

const anySubtree = "**"

// pathPattern is a compiled Ant-style pattern split into segments.
type pathPattern struct {
	raw      string
	segments []string
	// subtree is true when the pattern ends with "/**".
	subtree bool
}

func compilePattern(raw string) (pathPattern, error) {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return pathPattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	segments := splitPath(raw)
	p := pathPattern{raw: raw}

	for i, s := range segments {
		if !strings.Contains(s, anySubtree) {
			continue
		}
		if s != anySubtree || i != len(segments)-1 {
			return pathPattern{}, fmt.Errorf("%w: %q, ** is only allowed as the last segment", ErrInvalidPattern, raw)
		}
		p.subtree = true
		segments = segments[:i]
	}

	p.segments = segments
	return p, nil
}

// match reports whether the cleaned request path matches p.
func (p pathPattern) match(requestPath string) bool {
	segments := splitPath(requestPath)

	if p.subtree {
		if len(segments) < len(p.segments) {
			return false
		}
		segments = segments[:len(p.segments)]
	} else if len(segments) != len(p.segments) {
		return false
	}

	for i, s := range p.segments {
		if !matchSegment(s, segments[i]) {
			return false
		}
	}
	return true
}

// matchSegment matches one path segment against a pattern segment where "*"
// stands for any run of characters and "?" for exactly one.
func matchSegment(pattern, segment string) bool {
	if pattern == "*" {
		return segment != ""
	}
	if !strings.ContainsAny(pattern, "*?") {
		return pattern == segment
	}

	// path.Match treats "[" and "\" specially, escape them so only * and ?
	// act as wildcards.
	escaped := strings.NewReplacer(`\`, `\\`, `[`, `\[`).Replace(pattern)
	ok, err := path.Match(escaped, segment)
	return err == nil && ok
}

// cleanPath normalizes a request path before matching, so dot segments and
// duplicate slashes cannot be used to sneak past a rule.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
