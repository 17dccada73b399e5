package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// Keys is a throwaway ES256 key pair.
type Keys struct {
	PrivateKeyPEM string
	PublicKeyPEM  string
	issuer        *tokens.Issuer
}

// NewKeys generates a fresh P-256 key pair.
func NewKeys(t *testing.T) *Keys {
	t.Helper()
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	privDER, err := x509.MarshalECPrivateKey(ecKey)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&ecKey.PublicKey)
	require.NoError(t, err)

	k := &Keys{
		PrivateKeyPEM: string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: privDER})),
		PublicKeyPEM:  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})),
	}
	k.issuer, err = tokens.NewIssuer(k.PrivateKeyPEM, time.Hour)
	require.NoError(t, err)
	return k
}

// Token signs a token for user.
func (k *Keys) Token(t *testing.T, user types.UserContext) string {
	t.Helper()
	token, err := k.issuer.CreateToken(user)
	require.NoError(t, err)
	return token
}

// Issuer returns the issuer bound to the private key.
func (k *Keys) Issuer() *tokens.Issuer {
	return k.issuer
}
