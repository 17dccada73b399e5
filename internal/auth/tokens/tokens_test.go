package tokens

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

func keyPair(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	privDER, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err)
	return ecKey, string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: privDER}))
}

func TestCreateToken(t *testing.T) {
	ecKey, privPEM := keyPair(t)

	issuer, err := NewIssuer(privPEM, time.Hour)
	require.NoError(t, err)

	signed, err := issuer.CreateToken(types.UserContext{Username: "u1", IsAdmin: true})
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(signed, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return &ecKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, KeyID, parsed.Header["kid"])

	claims := parsed.Claims.(*Claims)
	require.Equal(t, "u1", claims.Claim["username"])
	require.Equal(t, true, claims.Claim["isAdmin"])
	require.Equal(t, "u1", claims.Subject)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestNewIssuerRejectsBadKey(t *testing.T) {
	_, err := NewIssuer("not a key", time.Hour)
	require.Error(t, err)
}
