// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/users/models"
)

// Repository defines data access for users and their applications.
type Repository interface {
	// Create inserts a user whose password is already hashed.
	Create(ctx context.Context, user models.User) (*models.User, error)

	// FindAll lists users ordered by username.
	FindAll(ctx context.Context) ([]models.User, error)

	// FindByUsername returns one user, password hash included.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindApplications returns the job ids username applied to.
	FindApplications(ctx context.Context, username string) ([]int, error)

	Update(ctx context.Context, username string, req sqlclause.UpdateRequest) (*models.User, error)

	Delete(ctx context.Context, username string) error

	// Apply records an application of username to jobID.
	Apply(ctx context.Context, username string, jobID int) error
}
