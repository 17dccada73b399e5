// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlclause

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePartialUpdate(t *testing.T) {
	t.Run("maps renamed and unrenamed fields", func(t *testing.T) {
		req := UpdateRequest{
			{Field: "firstName", Value: "Aliya"},
			{Field: "age", Value: 32},
		}

		clause, err := CompilePartialUpdate(req, ColumnNameMap{"firstName": "first_name"})

		require.NoError(t, err)
		assert.Equal(t, `"first_name"=$1, "age"=$2`, clause.SQL)
		assert.Equal(t, []interface{}{"Aliya", 32}, clause.Values)
	})

	t.Run("keeps request order", func(t *testing.T) {
		req := UpdateRequest{
			{Field: "logoUrl", Value: "http://c1.img"},
			{Field: "name", Value: "C1"},
			{Field: "numEmployees", Value: nil},
		}
		columns := ColumnNameMap{"numEmployees": "num_employees", "logoUrl": "logo_url"}

		clause, err := CompilePartialUpdate(req, columns)

		require.NoError(t, err)
		assert.Equal(t, `"logo_url"=$1, "name"=$2, "num_employees"=$3`, clause.SQL)
		assert.Equal(t, []interface{}{"http://c1.img", "C1", nil}, clause.Values)
	})

	t.Run("empty column map uses field names", func(t *testing.T) {
		clause, err := CompilePartialUpdate(UpdateRequest{{Field: "title", Value: "New"}}, nil)

		require.NoError(t, err)
		assert.Equal(t, `"title"=$1`, clause.SQL)
		assert.Equal(t, []interface{}{"New"}, clause.Values)
	})

	t.Run("rejects empty request", func(t *testing.T) {
		clause, err := CompilePartialUpdate(UpdateRequest{}, ColumnNameMap{"a": "b"})

		require.Nil(t, clause)
		require.ErrorIs(t, err, ErrNoData)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects nil request", func(t *testing.T) {
		_, err := CompilePartialUpdate(nil, nil)
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestCompilePartialUpdate_PlaceholdersAreContiguous(t *testing.T) {
	for n := 1; n <= 12; n++ {
		req := make(UpdateRequest, n)
		for i := range req {
			req[i] = Assignment{Field: fmt.Sprintf("f%d", i), Value: i}
		}

		clause, err := CompilePartialUpdate(req, nil)
		require.NoError(t, err)

		parts := strings.Split(clause.SQL, ", ")
		require.Len(t, parts, n)
		require.Len(t, clause.Values, n)
		for i, part := range parts {
			assert.Equal(t, fmt.Sprintf(`"f%d"=$%d`, i, i+1), part)
			assert.Equal(t, i, clause.Values[i])
		}
	}
}

func TestCompilePartialUpdate_Idempotent(t *testing.T) {
	req := UpdateRequest{{Field: "lastName", Value: "Doe"}, {Field: "email", Value: "d@x.io"}}
	columns := ColumnNameMap{"lastName": "last_name"}

	first, err := CompilePartialUpdate(req, columns)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := CompilePartialUpdate(req, columns)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}()
	}
	wg.Wait()
}

func TestUpdateRequestHelpers(t *testing.T) {
	req := UpdateRequest{{Field: "password", Value: "plain"}, {Field: "email", Value: "a@b.c"}}

	require.Equal(t, []string{"password", "email"}, req.Fields())

	v, ok := req.Get("password")
	require.True(t, ok)
	require.Equal(t, "plain", v)

	require.True(t, req.Set("password", "hashed"))
	require.False(t, req.Set("missing", 1))
	require.Equal(t, UpdateRequest{{Field: "password", Value: "hashed"}, {Field: "email", Value: "a@b.c"}}, req)
}

func TestCompiledClauseArgs(t *testing.T) {
	clause := &CompiledClause{SQL: `"name"=$1`, Values: []interface{}{"x"}}

	require.Equal(t, 2, clause.NextPlaceholder())
	require.Equal(t, []interface{}{"x", "handle"}, clause.Args("handle"))
	require.Equal(t, []interface{}{"x"}, clause.Values)

	var none *CompiledClause
	require.Equal(t, 1, none.NextPlaceholder())
	require.Equal(t, []interface{}{7}, none.Args(7))
}
