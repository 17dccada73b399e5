package tokens

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/types"
)

const (
	issuer = "jobly-api"
	// KeyID is the "kid" header of every issued token.
	KeyID = "jobly-auth-key-1"
)

// Claims is the signed token envelope. The authenticated user lives under
// the "claim" key.
type Claims struct {
	Claim map[string]interface{} `json:"claim"`
	jwt.RegisteredClaims
}

// Creator issues tokens for authenticated users.
type Creator interface {
	CreateToken(user types.UserContext) (string, error)
}

var _ Creator = (*Issuer)(nil)

// Issuer signs ES256 tokens for authenticated users.
type Issuer struct {
	privateKey *ecdsa.PrivateKey
	ttl        time.Duration
	now        func() time.Time
}

// NewIssuer parses the PEM encoded EC private key.
func NewIssuer(privateKeyPEM string, ttl time.Duration) (*Issuer, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{privateKey: privateKey, ttl: ttl, now: time.Now}, nil
}

// CreateToken returns a signed token carrying user as its claim.
func (i *Issuer) CreateToken(user types.UserContext) (string, error) {
	now := i.now()
	claims := Claims{
		Claim: user.Claims(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = KeyID

	signed, err := token.SignedString(i.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
