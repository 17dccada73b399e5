package authjwt

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The claim key where the UserContext is stored.
	ClaimKey string
	// The context key to store the UserContext.
	UserCtxName string
}

// New creates a middleware that decodes a bearer token when one is present.
// It never rejects a request: a missing or invalid token leaves the request
// anonymous and authorization is left to authrole.
func New(cfg Config) fiber.Handler {
	ecPublicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		panic(fmt.Sprintf("failed to parse EC public key: %v", err))
	}
	if cfg.ClaimKey == "" {
		cfg.ClaimKey = types.ClaimKey
	}
	if cfg.UserCtxName == "" {
		cfg.UserCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		userCtx, err := ValidateToken(tokenString, ecPublicKey, cfg.ClaimKey)
		if err != nil {
			log.Debug("ignoring bearer token: %v", err)
			return c.Next()
		}

		c.Locals(cfg.UserCtxName, userCtx)
		return c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, types.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, types.BearerPrefix))
}

// ValidateToken verifies tokenString and returns the UserContext stored
// under claimKey. It does not touch the response.
func ValidateToken(tokenString string, publicKey *ecdsa.PublicKey, claimKey string) (types.UserContext, error) {
	var userCtx types.UserContext

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return userCtx, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return userCtx, errors.New("invalid token")
	}

	claimData, ok := claims[claimKey].(map[string]interface{})
	if !ok {
		return userCtx, errors.New("invalid token claim format")
	}

	return mapToUserContext(claimData)
}

func mapToUserContext(claimData map[string]interface{}) (types.UserContext, error) {
	var userCtx types.UserContext

	username, ok := claimData["username"].(string)
	if !ok || username == "" {
		return userCtx, errors.New("missing or invalid username in claim")
	}
	userCtx.Username = username

	if isAdmin, ok := claimData["isAdmin"].(bool); ok {
		userCtx.IsAdmin = isAdmin
	}

	return userCtx, nil
}
