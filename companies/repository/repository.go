// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/sqlclause"
)

// Repository defines data access for companies.
type Repository interface {
	// Create inserts a company and returns the stored row.
	Create(ctx context.Context, company models.Company) (*models.Company, error)

	// FindAll lists companies matching filter, ordered by name.
	FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)

	// FindByHandle returns one company.
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// FindJobs returns the jobs of a company ordered by id.
	FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error)

	// Update applies a partial update and returns the updated row.
	Update(ctx context.Context, handle string, req sqlclause.UpdateRequest) (*models.Company, error)

	// Delete removes a company.
	Delete(ctx context.Context, handle string) error
}
