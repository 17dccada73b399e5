// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sqlclause turns caller-supplied partial updates and sparse filter
// criteria into parameterized SQL fragments. Nothing here touches the database;
// callers splice the fragment into a fixed query and bind Values positionally.
package sqlclause

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind raised by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNoData is returned when a partial update carries no fields.
var ErrNoData = fmt.Errorf("%w: no data", ErrInvalidArgument)

// CompiledClause is an SQL fragment with $1..$n placeholders and the values to bind, in order.
type CompiledClause struct {
	SQL    string
	Values []interface{}
}

// NextPlaceholder returns the index of the first placeholder a caller may append after Values.
func (c *CompiledClause) NextPlaceholder() int {
	if c == nil {
		return 1
	}
	return len(c.Values) + 1
}

// Args returns Values followed by extra, leaving c untouched.
func (c *CompiledClause) Args(extra ...interface{}) []interface{} {
	var n int
	if c != nil {
		n = len(c.Values)
	}
	args := make([]interface{}, 0, n+len(extra))
	if c != nil {
		args = append(args, c.Values...)
	}
	return append(args, extra...)
}
