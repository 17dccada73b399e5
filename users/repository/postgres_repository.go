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
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
)

const (
	userColumns       = "username, first_name, last_name, email, is_admin"
	credentialColumns = "username, password, first_name, last_name, email, is_admin"
	uniqueViolation   = "23505"
)

// ColumnNames maps request fields to user columns.
var ColumnNames = sqlclause.ColumnNameMap{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type postgresUserRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for users
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresUserRepository{client: client}
}

func (r *postgresUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("username", "password", "first_name", "last_name", "email", "is_admin").
		Values(user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var created models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrDuplicateUser, user.Username)
		}
		return nil, translate("create user", user.Username, err)
	}
	return &created, nil
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query, args, err := psql.Select(userColumns).From("users").OrderBy("username").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &users, query, args...); err != nil {
		return nil, translate("list users", "", err)
	}
	return users, nil
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := psql.Select(credentialColumns).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, query, args...); err != nil {
		return nil, translate("find user", username, err)
	}
	return &user, nil
}

func (r *postgresUserRepository) FindApplications(ctx context.Context, username string) ([]int, error) {
	query, args, err := psql.Select("job_id").
		From("applications").
		Where(squirrel.Eq{"username": username}).
		OrderBy("job_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	ids := []int{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &ids, query, args...); err != nil {
		return nil, translate("list applications", username, err)
	}
	return ids, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, username string, req sqlclause.UpdateRequest) (*models.User, error) {
	set, err := sqlclause.CompilePartialUpdate(req, ColumnNames)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		set.SQL, set.NextPlaceholder(), userColumns)

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, query, set.Args(username)...); err != nil {
		return nil, translate("update user", username, err)
	}
	return &user, nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, username string) error {
	query, args, err := psql.Delete("users").
		Where(squirrel.Eq{"username": username}).
		Suffix("RETURNING username").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}

	var deleted string
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &deleted, query, args...); err != nil {
		return translate("delete user", username, err)
	}
	return nil
}

func (r *postgresUserRepository) Apply(ctx context.Context, username string, jobID int) error {
	return r.client.WithTransaction(ctx, func(ctx context.Context) error {
		exec := r.client.Executor(ctx)

		query, args, err := psql.Select("id").From("jobs").Where(squirrel.Eq{"id": jobID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build select: %w", err)
		}
		var found int
		if err := sqlx.GetContext(ctx, exec, &found, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %d", userErrors.ErrJobNotFound, jobID)
			}
			return translate("find job", username, err)
		}

		query, args, err = psql.Select("username").From("users").Where(squirrel.Eq{"username": username}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build select: %w", err)
		}
		var name string
		if err := sqlx.GetContext(ctx, exec, &name, query, args...); err != nil {
			return translate("find user", username, err)
		}

		query, args, err = psql.Insert("applications").
			Columns("job_id", "username").
			Values(jobID, username).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s to job %d", userErrors.ErrAlreadyApplied, username, jobID)
			}
			return translate("apply", username, err)
		}
		return nil
	})
}

func translate(op, username string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
	}
	return fmt.Errorf("%w: %s: %w", userErrors.ErrDatabaseOperation, op, err)
}
