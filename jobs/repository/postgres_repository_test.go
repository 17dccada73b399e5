package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/testutil"
	jobErrors "github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobRowColumns = []string{"id", "title", "salary", "equity", "company_handle"}

func TestPostgresRepository_Create(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	insert := testutil.FmtSQLRegex(`
		INSERT INTO jobs (title,salary,equity,company_handle) VALUES ($1,$2,$3,$4)
		RETURNING id, title, salary, equity, company_handle
	`)

	mock.ExpectQuery(insert).
		WithArgs("J1", sqlmock.AnyArg(), sqlmock.AnyArg(), "c1").
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(1, "J1", 100, "0.1", "c1"))

	job, err := repo.Create(context.Background(), models.Job{Title: "J1", Salary: intPtr(100), CompanyHandle: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 1, job.ID)
	assert.Equal(t, 0.1, *job.Equity)

	mock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: "23503"})
	_, err = repo.Create(context.Background(), models.Job{Title: "J1", CompanyHandle: "nope"})
	assert.ErrorIs(t, err, jobErrors.ErrUnknownCompany)
}

func TestPostgresRepository_FindAll(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	listRows := func() *sqlmock.Rows {
		return sqlmock.NewRows(append(jobRowColumns, "company_name")).
			AddRow(1, "J1", 100, "0.1", "c1", "C1").
			AddRow(2, "J2", nil, nil, "c1", "C1")
	}

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		FROM jobs j LEFT JOIN companies AS c ON c.handle = j.company_handle
		WHERE salary >= $1 AND equity > $2
		ORDER BY title
	`)).WithArgs(50, 0).WillReturnRows(listRows())

	jobs, err := repo.FindAll(context.Background(), models.JobFilter{MinSalary: intPtr(50), HasEquity: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "C1", *jobs[0].CompanyName)
	assert.Equal(t, "c1", jobs[0].CompanyHandle)
	assert.Nil(t, jobs[1].Salary)

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		FROM jobs j LEFT JOIN companies AS c ON c.handle = j.company_handle
		ORDER BY title
	`)).WillReturnRows(listRows())

	jobs, err = repo.FindAll(context.Background(), models.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestPostgresRepository_FindByID(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	query := testutil.FmtSQLRegex(`SELECT id, title, salary, equity, company_handle FROM jobs WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(1).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(1, "J1", 100, nil, "c1"))
	job, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "J1", job.Title)
	assert.Nil(t, job.Equity)

	mock.ExpectQuery(query).WithArgs(0).WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByID(context.Background(), 0)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
}

func TestPostgresRepository_Update(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		UPDATE jobs SET "title"=$1, "equity"=$2 WHERE id = $3
		RETURNING id, title, salary, equity, company_handle
	`)).WithArgs("New", 0.5, 1).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(1, "New", 100, "0.5", "c1"))

	job, err := repo.Update(context.Background(), 1, sqlclause.UpdateRequest{
		{Field: "title", Value: "New"},
		{Field: "equity", Value: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", job.Title)
	assert.Equal(t, 0.5, *job.Equity)

	_, err = repo.Update(context.Background(), 1, nil)
	assert.ErrorIs(t, err, sqlclause.ErrNoData)

	for _, code := range []pq.ErrorCode{"22003", "23514"} {
		mock.ExpectQuery(`UPDATE jobs`).WillReturnError(&pq.Error{Code: code})
		_, err = repo.Update(context.Background(), 1, sqlclause.UpdateRequest{{Field: "salary", Value: int64(1)}})
		assert.ErrorIs(t, err, sqlclause.ErrInvalidArgument, string(code))
		assert.NotErrorIs(t, err, jobErrors.ErrDatabaseOperation, string(code))
	}
}

func TestPostgresRepository_Delete(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	query := testutil.FmtSQLRegex(`DELETE FROM jobs WHERE id = $1 RETURNING id`)

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectQuery(query).WithArgs(0).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	assert.ErrorIs(t, repo.Delete(context.Background(), 0), jobErrors.ErrJobNotFound)
}
