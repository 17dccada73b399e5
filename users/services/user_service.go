package services

import (
	"context"
	"fmt"

	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/types"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/internal/validation"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/repository"
)

const generatedPasswordLength = 16

var updateSchema = validation.UpdateSchema{
	"firstName": {Kind: validation.KindString, Tag: "min=1,max=30"},
	"lastName":  {Kind: validation.KindString, Tag: "min=1,max=30"},
	"password":  {Kind: validation.KindString, Tag: "min=5,max=72"},
	"email":     {Kind: validation.KindString, Tag: "email,min=6,max=60"},
}

var adminUpdateSchema = func() validation.UpdateSchema {
	s := validation.UpdateSchema{"isAdmin": {Kind: validation.KindBool}}
	for k, v := range updateSchema {
		s[k] = v
	}
	return s
}()

type userService struct {
	repo     repository.Repository
	tokens   tokens.Creator
	security platformconfig.SecurityConfig
}

// NewUserService creates a new user service
func NewUserService(repo repository.Repository, tokenCreator tokens.Creator, security platformconfig.SecurityConfig) UserService {
	return &userService{repo: repo, tokens: tokenCreator, security: security}
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.CreatedUser, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var generated string
	password := req.Password
	if password == "" {
		var err error
		if generated, err = utils.GeneratePassword(generatedPasswordLength); err != nil {
			return nil, err
		}
		password = generated
	} else if err := s.checkStrength(password, req.Username, req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(password, s.security.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, req.ToUser(hashed))
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.CreateToken(user.Context())
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "user %s created (admin=%t)", user.Username, user.IsAdmin)
	return &models.CreatedUser{User: *user, Token: token, Password: generated}, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applications, err := s.repo.FindApplications(ctx, username)
	if err != nil {
		return nil, err
	}

	return &models.UserDetail{User: *user, Applications: applications}, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req sqlclause.UpdateRequest, actor types.UserContext) (*models.User, error) {
	if len(req) == 0 {
		return nil, sqlclause.ErrNoData
	}

	schema := updateSchema
	if actor.IsAdmin {
		schema = adminUpdateSchema
	}
	if err := schema.Validate(req); err != nil {
		return nil, err
	}

	// The hash replaces the plain password at the same position.
	if v, ok := req.Get("password"); ok {
		plain := v.(string)
		if err := s.checkStrength(plain, username); err != nil {
			return nil, err
		}
		hashed, err := utils.HashPassword(plain, s.security.BcryptCost)
		if err != nil {
			return nil, err
		}
		req.Set("password", hashed)
	}

	user, err := s.repo.Update(ctx, username, req)
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "user %s updated by %s: %v", username, actor.Username, req.Fields())
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "user %s deleted", username)
	return nil
}

func (s *userService) ApplyToJob(ctx context.Context, username string, jobID int) error {
	if err := s.repo.Apply(ctx, username, jobID); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "user %s applied to job %d", username, jobID)
	return nil
}

func (s *userService) checkStrength(password string, userInputs ...string) error {
	if !utils.PasswordStrong(password, s.security.MinPasswordScore, userInputs...) {
		return fmt.Errorf("%w: minimum score is %d", userErrors.ErrWeakPassword, s.security.MinPasswordScore)
	}
	return nil
}
