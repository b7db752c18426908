package token_test

import (
	"strings"
	"testing"

	"github.com/metorial/identity-core/internal/identity/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	s := token.NewStateService("secret")

	signed, err := s.Sign("intent-1", "tenant-1", "")
	require.NoError(t, err)

	claims, err := s.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "intent-1", claims.IntentID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Empty(t, claims.Provider)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := token.NewStateService("secret").Sign("intent-1", "", "google")
	require.NoError(t, err)

	_, err = token.NewStateService("other").Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s := token.NewStateService("secret")
	signed, err := s.Sign("intent-1", "", "")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJpbnRlbnRfaWQiOiJpbnRlbnQtMiJ9." + parts[2]

	_, err = s.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := token.NewStateService("secret").Verify("not-a-token")
	assert.Error(t, err)
}
