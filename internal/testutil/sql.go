package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MakeNowJust/heredoc"
	"github.com/jmoiron/sqlx"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/stretchr/testify/require"
)

// FmtSQL collapses an indented SQL literal onto one line.
func FmtSQL(sql string) string {
	str := strings.Replace(heredoc.Doc(sql), "\n", " ", -1)
	str = strings.Replace(str, "\t", "", -1)
	return strings.Trim(str, " ")
}

// FmtSQLRegex turns an indented SQL literal into an anchored regexp for
// sqlmock expectations.
func FmtSQLRegex(sql string) string {
	str := FmtSQL(sql)
	for _, c := range []string{"\\", ".", "$", "(", ")", "*", "+", "?", "[", "]", "|", "^"} {
		str = strings.Replace(str, c, "\\"+c, -1)
	}
	return fmt.Sprintf("^%s$", str)
}

// NewMockClient returns a postgres.Client backed by sqlmock. Expectations
// are checked when the test ends.
func NewMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.NewClientFromDB(sqlx.NewDb(db, "postgres")), mock
}
