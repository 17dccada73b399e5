package testutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFmtSQL(t *testing.T) {
	got := FmtSQL(`
		SELECT handle, name
		FROM companies
		WHERE handle = $1
	`)
	require.Equal(t, "SELECT handle, name FROM companies WHERE handle = $1", got)
}

func TestFmtSQLRegex(t *testing.T) {
	re := regexp.MustCompile(FmtSQLRegex(`
		UPDATE companies SET "name"=$1
		WHERE handle = $2
		RETURNING handle, (num_employees)
	`))
	require.True(t, re.MatchString(`UPDATE companies SET "name"=$1 WHERE handle = $2 RETURNING handle, (num_employees)`))
	require.False(t, re.MatchString(`UPDATE companies SET "name"=$1 WHERE handle = $2`))
}
