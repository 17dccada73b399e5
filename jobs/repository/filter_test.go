package repository

import (
	"testing"

	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.JobFilter
		wantSQL    string
		wantValues []interface{}
	}{
		{
			name:       "title and min salary",
			filter:     models.JobFilter{Title: strPtr("eng"), MinSalary: intPtr(1000)},
			wantSQL:    "WHERE UPPER(title) LIKE UPPER($1) AND salary >= $2",
			wantValues: []interface{}{"eng", 1000},
		},
		{
			name:       "all three ignores equity",
			filter:     models.JobFilter{Title: strPtr("eng"), MinSalary: intPtr(1000), HasEquity: boolPtr(true)},
			wantSQL:    "WHERE UPPER(title) LIKE UPPER($1) AND salary >= $2",
			wantValues: []interface{}{"eng", 1000},
		},
		{
			name:       "title and equity",
			filter:     models.JobFilter{Title: strPtr("eng"), HasEquity: boolPtr(true)},
			wantSQL:    "WHERE UPPER(title) LIKE UPPER($1) AND equity > $2",
			wantValues: []interface{}{"eng", 0},
		},
		{
			name:       "title",
			filter:     models.JobFilter{Title: strPtr("eng")},
			wantSQL:    "WHERE UPPER(title) LIKE UPPER($1)",
			wantValues: []interface{}{"eng"},
		},
		{
			name:       "min salary and equity",
			filter:     models.JobFilter{MinSalary: intPtr(1000), HasEquity: boolPtr(true)},
			wantSQL:    "WHERE salary >= $1 AND equity > $2",
			wantValues: []interface{}{1000, 0},
		},
		{
			name:       "min salary",
			filter:     models.JobFilter{MinSalary: intPtr(1000)},
			wantSQL:    "WHERE salary >= $1",
			wantValues: []interface{}{1000},
		},
		{
			name:       "equity",
			filter:     models.JobFilter{HasEquity: boolPtr(true)},
			wantSQL:    "WHERE equity > $1",
			wantValues: []interface{}{0},
		},
		{
			name:       "false equity counts as absent",
			filter:     models.JobFilter{Title: strPtr("eng"), HasEquity: boolPtr(false)},
			wantSQL:    "WHERE UPPER(title) LIKE UPPER($1)",
			wantValues: []interface{}{"eng"},
		},
		{
			name:       "min salary with false equity",
			filter:     models.JobFilter{MinSalary: intPtr(1000), HasEquity: boolPtr(false)},
			wantSQL:    "WHERE salary >= $1",
			wantValues: []interface{}{1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause := CompileFilter(tt.filter)
			require.NotNil(t, clause)
			assert.Equal(t, tt.wantSQL, clause.SQL)
			assert.Equal(t, tt.wantValues, clause.Values)
		})
	}
}

func TestCompileFilter_None(t *testing.T) {
	assert.Nil(t, CompileFilter(models.JobFilter{}))
	assert.Nil(t, CompileFilter(models.JobFilter{HasEquity: boolPtr(false)}), "false equity alone has no clause")
	assert.Nil(t, CompileFilter(models.JobFilter{Title: strPtr(""), MinSalary: intPtr(0), HasEquity: boolPtr(false)}))
}
