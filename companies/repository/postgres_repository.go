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
	companyErrors "github.com/qolzam/jobly/companies/errors"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/sqlclause"
)

const companyColumns = "handle, name, description, num_employees, logo_url"

const (
	uniqueViolation   = "23505"
	checkViolation    = "23514"
	numericOutOfRange = "22003"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// postgresCompanyRepository implements Repository with squirrel for the fixed
// statements and compiled clauses for filters and partial updates
type postgresCompanyRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresCompanyRepository{client: client}
}

func (r *postgresCompanyRepository) Create(ctx context.Context, company models.Company) (*models.Company, error) {
	query, args, err := psql.Insert("companies").
		Columns("handle", "name", "description", "num_employees", "logo_url").
		Values(company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL).
		Suffix("RETURNING " + companyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, query, args...); err != nil {
		return nil, translate("create company", company.Handle, err)
	}
	return &created, nil
}

func (r *postgresCompanyRepository) FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	var args []interface{}
	if where := CompileFilter(filter); where != nil {
		query += " " + where.SQL
		args = where.Values
	}
	query += " ORDER BY name"

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &companies, query, args...); err != nil {
		return nil, translate("list companies", "", err)
	}
	return companies, nil
}

func (r *postgresCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query, args, err := psql.Select(companyColumns).
		From("companies").
		Where(squirrel.Eq{"handle": handle}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &company, query, args...); err != nil {
		return nil, translate("find company", handle, err)
	}
	return &company, nil
}

func (r *postgresCompanyRepository) FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	query, args, err := psql.Select("id", "title", "salary", "equity").
		From("jobs").
		Where(squirrel.Eq{"company_handle": handle}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	jobs := []models.CompanyJob{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &jobs, query, args...); err != nil {
		return nil, translate("list company jobs", handle, err)
	}
	return jobs, nil
}

func (r *postgresCompanyRepository) Update(ctx context.Context, handle string, req sqlclause.UpdateRequest) (*models.Company, error) {
	set, err := sqlclause.CompilePartialUpdate(req, ColumnNames)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		set.SQL, set.NextPlaceholder(), companyColumns)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &company, query, set.Args(handle)...); err != nil {
		return nil, translate("update company", handle, err)
	}
	return &company, nil
}

func (r *postgresCompanyRepository) Delete(ctx context.Context, handle string) error {
	query, args, err := psql.Delete("companies").
		Where(squirrel.Eq{"handle": handle}).
		Suffix("RETURNING handle").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	var deleted string
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &deleted, query, args...); err != nil {
		return translate("delete company", handle, err)
	}
	return nil
}

func translate(op, handle string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", companyErrors.ErrDuplicateCompany, handle)
		case numericOutOfRange, checkViolation:
			return fmt.Errorf("%w: %s: %s", sqlclause.ErrInvalidArgument, op, pqErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %w", companyErrors.ErrDatabaseOperation, op, err)
}
