// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
)

const jobColumns = "id, title, salary, equity, company_handle"

const listQuery = `SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
FROM jobs j LEFT JOIN companies AS c ON c.handle = j.company_handle`

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	numericOutOfRange   = "22003"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type postgresJobRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresJobRepository{client: client}
}

func (r *postgresJobRepository) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	query, args, err := psql.Insert("jobs").
		Columns("title", "salary", "equity", "company_handle").
		Values(job.Title, job.Salary, job.Equity, job.CompanyHandle).
		Suffix("RETURNING " + jobColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("%w: %s", jobErrors.ErrUnknownCompany, job.CompanyHandle)
		}
		return nil, translate("create job", 0, err)
	}
	return &created, nil
}

func (r *postgresJobRepository) FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	query := listQuery
	var args []interface{}
	if where := CompileFilter(filter); where != nil {
		query += " " + where.SQL
		args = where.Values
	}
	query += " ORDER BY title"

	jobs := []models.JobListing{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &jobs, query, args...); err != nil {
		return nil, translate("list jobs", 0, err)
	}
	return jobs, nil
}

func (r *postgresJobRepository) FindByID(ctx context.Context, id int) (*models.Job, error) {
	query, args, err := psql.Select(jobColumns).
		From("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query, args...); err != nil {
		return nil, translate("find job", id, err)
	}
	return &job, nil
}

func (r *postgresJobRepository) Update(ctx context.Context, id int, req sqlclause.UpdateRequest) (*models.Job, error) {
	// Job fields are named after their columns.
	set, err := sqlclause.CompilePartialUpdate(req, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		set.SQL, set.NextPlaceholder(), jobColumns)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, query, set.Args(id)...); err != nil {
		return nil, translate("update job", id, err)
	}
	return &job, nil
}

func (r *postgresJobRepository) Delete(ctx context.Context, id int) error {
	query, args, err := psql.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	var deleted int
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &deleted, query, args...); err != nil {
		return translate("delete job", id, err)
	}
	return nil
}

func translate(op string, id int, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == numericOutOfRange || pqErr.Code == checkViolation) {
		return fmt.Errorf("%w: %s: %s", sqlclause.ErrInvalidArgument, op, pqErr.Message)
	}
	return fmt.Errorf("%w: %s: %w", jobErrors.ErrDatabaseOperation, op, err)
}
