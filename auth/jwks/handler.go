package jwks

import (
	"crypto/ecdsa"
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/auth/tokens"
)

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

// Handler publishes the token verification key.
type Handler struct {
	set JWKS
}

// NewHandler converts the PEM public key once.
func NewHandler(publicKeyPEM string) (*Handler, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return &Handler{set: JWKS{Keys: []JWK{toJWK(key)}}}, nil
}

func toJWK(key *ecdsa.PublicKey) JWK {
	// P-256 coordinates are fixed width.
	x := make([]byte, 32)
	y := make([]byte, 32)
	key.X.FillBytes(x)
	key.Y.FillBytes(y)

	return JWK{
		Kty: "EC",
		Use: "sig",
		Kid: tokens.KeyID,
		Alg: "ES256",
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(x),
		Y:   base64.RawURLEncoding.EncodeToString(y),
	}
}

// Handle serves GET /auth/.well-known/jwks.json.
func (h *Handler) Handle(c *fiber.Ctx) error {
	return c.JSON(h.set)
}
