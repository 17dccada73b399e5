package services

import (
	"context"

	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/types"
	"github.com/qolzam/jobly/users/models"
)

// UserService defines the interface for user operations
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.CreatedUser, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)

	// UpdateUser applies a partial update on behalf of actor. Only admins may
	// change isAdmin.
	UpdateUser(ctx context.Context, username string, req sqlclause.UpdateRequest, actor types.UserContext) (*models.User, error)

	DeleteUser(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}
