package helpers

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func TestTenantIDFromToken(t *testing.T) {
	token := fakeToken(t, map[string]any{
		"aud": "https://graph.microsoft.com",
		"tid": "3b5e2c8a-1f2d-4a6b-9c0e-7d8f9a0b1c2d",
	})

	tid, err := tenantIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3b5e2c8a-1f2d-4a6b-9c0e-7d8f9a0b1c2d", tid)
}

func TestTenantIDFromTokenMissingClaim(t *testing.T) {
	token := fakeToken(t, map[string]any{"aud": "https://graph.microsoft.com"})

	_, err := tenantIDFromToken(token)
	assert.Error(t, err)
}

func TestTenantIDFromTokenGarbage(t *testing.T) {
	_, err := tenantIDFromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestGraphErrorPassesThroughPlainErrors(t *testing.T) {
	plain := assert.AnError
	assert.Equal(t, plain, GraphError(plain))
	assert.Nil(t, GraphError(nil))
}
