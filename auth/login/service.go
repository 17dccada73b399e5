package login

import (
	"context"
	"errors"
	"fmt"

	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/internal/validation"
	userErrors "github.com/qolzam/jobly/users/errors"
	userRepository "github.com/qolzam/jobly/users/repository"
)

// Service exchanges credentials for a token.
type Service struct {
	users  userRepository.Repository
	tokens tokens.Creator
}

func NewService(users userRepository.Repository, tokenCreator tokens.Creator) *Service {
	return &Service{users: users, tokens: tokenCreator}
}

// Authenticate returns a token for valid credentials. An unknown user and a
// wrong password are reported the same way.
func (s *Service) Authenticate(ctx context.Context, req *TokenRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			log.WarnWithContext(ctx, "login failed for unknown user %s", req.Username)
			return "", authErrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		log.WarnWithContext(ctx, "login failed for %s", req.Username)
		return "", authErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.Context())
	if err != nil {
		return "", fmt.Errorf("%w: %v", authErrors.ErrSystemError, err)
	}
	return token, nil
}
