// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/jobs/models"
)

// Repository defines data access for jobs.
type Repository interface {
	Create(ctx context.Context, job models.Job) (*models.Job, error)

	// FindAll lists jobs matching filter with their company name, ordered by title.
	FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error)

	FindByID(ctx context.Context, id int) (*models.Job, error)

	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, id int, req sqlclause.UpdateRequest) (*models.Job, error)

	Delete(ctx context.Context, id int) error
}
