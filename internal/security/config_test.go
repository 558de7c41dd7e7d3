package security

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social/internal/config"
)

func TestNewRuleSetFromConfig_Defaults(t *testing.T) {
	rs, err := NewRuleSetFromConfig(config.Defaults().Security)
	require.NoError(t, err)

	assert.Equal(t, Permit, rs.Decide(http.MethodPost, "/auth/signin").Access)
	assert.Equal(t, Authenticated, rs.Decide(http.MethodGet, "/api/users/profile").Access)
	assert.Equal(t, Permit, rs.Decide(http.MethodGet, "/healthz").Access)
}

func TestNewRuleSetFromConfig_CustomPrefixes(t *testing.T) {
	rs, err := NewRuleSetFromConfig(config.Security{AuthPrefix: "/login", APIPrefix: "/v1", FallbackAccess: "deny"})
	require.NoError(t, err)

	assert.Equal(t, Permit, rs.Decide(http.MethodPost, "/login/x").Access)
	assert.Equal(t, Authenticated, rs.Decide(http.MethodGet, "/v1/x").Access)
	assert.Equal(t, Deny, rs.Decide(http.MethodGet, "/api/x").Access)
}

func TestNewRuleSetFromConfig_BadFallback(t *testing.T) {
	_, err := NewRuleSetFromConfig(config.Security{AuthPrefix: "/auth", APIPrefix: "/api", FallbackAccess: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidAccess)
}
