// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package migrations holds the Jobly schema and applies it idempotently.
package migrations

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/jmoiron/sqlx"
	"github.com/qolzam/jobly/internal/pkg/log"
)

// Migration is one named, idempotent DDL step.
type Migration struct {
	Name string
	SQL  string
}

// Schema lists the migrations in the order they must run.
var Schema = []Migration{
	{
		Name: "create_companies",
		SQL: heredoc.Doc(`
			CREATE TABLE IF NOT EXISTS companies (
			  handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
			  name TEXT UNIQUE NOT NULL,
			  num_employees INTEGER CHECK (num_employees >= 0),
			  description TEXT NOT NULL,
			  logo_url TEXT
			)`),
	},
	{
		Name: "create_jobs",
		SQL: heredoc.Doc(`
			CREATE TABLE IF NOT EXISTS jobs (
			  id SERIAL PRIMARY KEY,
			  title TEXT NOT NULL,
			  salary INTEGER CHECK (salary >= 0),
			  equity NUMERIC CHECK (equity <= 1.0),
			  company_handle VARCHAR(25) NOT NULL
			    REFERENCES companies ON DELETE CASCADE
			)`),
	},
	{
		Name: "create_users",
		SQL: heredoc.Doc(`
			CREATE TABLE IF NOT EXISTS users (
			  username VARCHAR(25) PRIMARY KEY,
			  password TEXT NOT NULL,
			  first_name TEXT NOT NULL,
			  last_name TEXT NOT NULL,
			  email TEXT NOT NULL CHECK (position('@' IN email) > 1),
			  is_admin BOOLEAN NOT NULL DEFAULT FALSE
			)`),
	},
	{
		Name: "create_applications",
		SQL: heredoc.Doc(`
			CREATE TABLE IF NOT EXISTS applications (
			  username VARCHAR(25)
			    REFERENCES users ON DELETE CASCADE,
			  job_id INTEGER
			    REFERENCES jobs ON DELETE CASCADE,
			  PRIMARY KEY (username, job_id)
			)`),
	},
}

// Apply runs every migration inside a single transaction.
func Apply(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}

	for _, m := range Schema {
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		log.Info("applied migration %s", m.Name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}
	return nil
}
