package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/testutil"
	userErrors "github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"username", "first_name", "last_name", "email", "is_admin"}

func TestPostgresRepository_Create(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	insert := testutil.FmtSQLRegex(`
		INSERT INTO users (username,password,first_name,last_name,email,is_admin)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING username, first_name, last_name, email, is_admin
	`)
	user := models.User{Username: "new", Password: "hash", FirstName: "F", LastName: "L", Email: "new@email.com"}

	mock.ExpectQuery(insert).
		WithArgs("new", "hash", "F", "L", "new@email.com", false).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("new", "F", "L", "new@email.com", false))
	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "new", created.Username)
	assert.Empty(t, created.Password)

	mock.ExpectQuery(insert).WillReturnError(&pq.Error{Code: "23505"})
	_, err = repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, userErrors.ErrDuplicateUser)
}

func TestPostgresRepository_FindAll(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		SELECT username, first_name, last_name, email, is_admin FROM users ORDER BY username
	`)).WillReturnRows(sqlmock.NewRows(userRowColumns).
		AddRow("u1", "U1F", "U1L", "u1@email.com", false).
		AddRow("u2", "U2F", "U2L", "u2@email.com", true))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[1].IsAdmin)
}

func TestPostgresRepository_FindByUsername(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	query := testutil.FmtSQLRegex(`
		SELECT username, password, first_name, last_name, email, is_admin FROM users WHERE username = $1
	`)

	mock.ExpectQuery(query).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "first_name", "last_name", "email", "is_admin"}).
			AddRow("u1", "hash", "U1F", "U1L", "u1@email.com", false))
	user, err := repo.FindByUsername(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.Password)

	mock.ExpectQuery(query).WithArgs("nope").WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByUsername(context.Background(), "nope")
	assert.ErrorIs(t, err, userErrors.ErrUserNotFound)
}

func TestPostgresRepository_FindApplications(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id
	`)).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"job_id"}).AddRow(1).AddRow(3))

	ids, err := repo.FindApplications(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestPostgresRepository_Update(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(testutil.FmtSQLRegex(`
		UPDATE users SET "first_name"=$1, "password"=$2, "is_admin"=$3 WHERE username = $4
		RETURNING username, first_name, last_name, email, is_admin
	`)).WithArgs("Aliya", "hash", true, "u1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("u1", "Aliya", "U1L", "u1@email.com", true))

	user, err := repo.Update(context.Background(), "u1", sqlclause.UpdateRequest{
		{Field: "firstName", Value: "Aliya"},
		{Field: "password", Value: "hash"},
		{Field: "isAdmin", Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Aliya", user.FirstName)
	assert.True(t, user.IsAdmin)
}

func TestPostgresRepository_Delete(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)
	query := testutil.FmtSQLRegex(`DELETE FROM users WHERE username = $1 RETURNING username`)

	mock.ExpectQuery(query).WithArgs("nope").WillReturnRows(sqlmock.NewRows([]string{"username"}))
	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), userErrors.ErrUserNotFound)
}

func TestPostgresRepository_Apply(t *testing.T) {
	jobQuery := testutil.FmtSQLRegex(`SELECT id FROM jobs WHERE id = $1`)
	userQuery := testutil.FmtSQLRegex(`SELECT username FROM users WHERE username = $1`)
	insert := testutil.FmtSQLRegex(`INSERT INTO applications (job_id,username) VALUES ($1,$2)`)

	t.Run("records the application in one transaction", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(jobQuery).WithArgs(7).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(userQuery).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("u1"))
		mock.ExpectExec(insert).WithArgs(7, "u1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Apply(context.Background(), "u1", 7))
	})

	t.Run("unknown job rolls back", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(jobQuery).WithArgs(0).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Apply(context.Background(), "u1", 0), userErrors.ErrJobNotFound)
	})

	t.Run("unknown user rolls back", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(jobQuery).WithArgs(7).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(userQuery).WithArgs("nope").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Apply(context.Background(), "nope", 7), userErrors.ErrUserNotFound)
	})

	t.Run("second application", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(jobQuery).WithArgs(7).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(userQuery).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("u1"))
		mock.ExpectExec(insert).WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Apply(context.Background(), "u1", 7), userErrors.ErrAlreadyApplied)
	})
}
