package signup

import (
	"context"
	"fmt"

	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/internal/validation"
	userErrors "github.com/qolzam/jobly/users/errors"
	userRepository "github.com/qolzam/jobly/users/repository"
)

// Service registers new users.
type Service struct {
	users    userRepository.Repository
	tokens   tokens.Creator
	security platformconfig.SecurityConfig
}

func NewService(users userRepository.Repository, tokenCreator tokens.Creator, security platformconfig.SecurityConfig) *Service {
	return &Service{users: users, tokens: tokenCreator, security: security}
}

// Register stores a non-admin user and returns a token for it.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	if !utils.PasswordStrong(req.Password, s.security.MinPasswordScore, req.Username, req.FirstName, req.LastName, req.Email) {
		return "", fmt.Errorf("%w: minimum score is %d", userErrors.ErrWeakPassword, s.security.MinPasswordScore)
	}

	hashed, err := utils.HashPassword(req.Password, s.security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", authErrors.ErrSystemError, err)
	}

	user, err := s.users.Create(ctx, req.ToUser(hashed))
	if err != nil {
		return "", err
	}
	log.InfoWithContext(ctx, "user %s registered", user.Username)

	token, err := s.tokens.CreateToken(user.Context())
	if err != nil {
		return "", fmt.Errorf("%w: %v", authErrors.ErrSystemError, err)
	}
	return token, nil
}
