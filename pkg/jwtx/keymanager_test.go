package jwtx_test

import (
	"testing"
	"time"

	"github.com/feroxapp/ferox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestEphemeralKeyManagerSignAndVerify(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer: "https://api.test",
	})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 3, km.NumSigners())

	claims := jwtx.NewSessionClaims(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"alice",
		"https://api.test",
		0, // default TTL
		time.Now().UTC(),
	)

	signer := km.GetSigner()
	require.NotNil(t, signer)
	require.NoError(t, signer.Validate())

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.NoError(t, got.ValidateExpiry())

	// Default TTL keeps the session alive for a week.
	require.WithinDuration(t,
		time.Now().Add(jwtx.DefaultSessionTTL),
		got.ExpiresAt.Time,
		time.Minute,
	)
}

func TestVerifierRejectsForeignTokens(t *testing.T) {
	kmA, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://api.test", NumKeys: 1})
	require.NoError(t, err)
	kmB, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://api.test", NumKeys: 1})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("sub", "bob", "https://api.test", time.Hour, time.Now().UTC())
	token, err := kmA.GetSigner().Sign(claims)
	require.NoError(t, err)

	// Signed with A's key, so B must not accept it.
	_, err = kmB.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifierRejectsWrongIssuer(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://api.test", NumKeys: 1})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("sub", "bob", "https://evil.test", time.Hour, time.Now().UTC())
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifierRejectsExpiredTokens(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://api.test", NumKeys: 1})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("sub", "bob", "https://api.test", time.Minute, time.Now().UTC().Add(-time.Hour))
	token, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}

func TestPublicJWKSExposesAllSigners(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "https://api.test", NumKeys: 2})
	require.NoError(t, err)

	jwks := km.KeySet.PublicJWKS()
	require.Len(t, jwks.Keys, 2)

	for _, k := range jwks.Keys {
		require.Equal(t, "OKP", k.Kty)
		require.Equal(t, "Ed25519", k.Crv)
		require.Equal(t, "EdDSA", k.Alg)
		require.NotEmpty(t, k.Kid)
		require.NotEmpty(t, k.X)
	}
}
