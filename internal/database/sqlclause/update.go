// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlclause

import (
	"fmt"
	"strings"
)

// Assignment is one field of a partial update.
type Assignment struct {
	Field string
	Value interface{}
}

// UpdateRequest is an ordered set of field assignments. Order is significant:
// it decides placeholder numbering in the compiled SET clause.
type UpdateRequest []Assignment

// ColumnNameMap renames logical field names to column names. Fields missing
// from the map are used as column names unchanged.
type ColumnNameMap map[string]string

// Column resolves the physical column for a logical field.
func (m ColumnNameMap) Column(field string) string {
	if column, ok := m[field]; ok {
		return column
	}
	return field
}

// Fields returns the logical field names in request order.
func (r UpdateRequest) Fields() []string {
	fields := make([]string, len(r))
	for i, a := range r {
		fields[i] = a.Field
	}
	return fields
}

// Get returns the value assigned to field, if any.
func (r UpdateRequest) Get(field string) (interface{}, bool) {
	for _, a := range r {
		if a.Field == field {
			return a.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing field in place, keeping its position.
// It reports whether the field was present.
func (r UpdateRequest) Set(field string, value interface{}) bool {
	for i := range r {
		if r[i].Field == field {
			r[i].Value = value
			return true
		}
	}
	return false
}

// CompilePartialUpdate builds the assignment list of an UPDATE statement.
//
// Each entry becomes "<column>"=$i where i is the entry's 1-based position in
// req, and the returned Values follow the same order. An empty request yields
// ErrNoData.
func CompilePartialUpdate(req UpdateRequest, columns ColumnNameMap) (*CompiledClause, error) {
	if len(req) == 0 {
		return nil, ErrNoData
	}

	cols := make([]string, len(req))
	values := make([]interface{}, len(req))
	for i, a := range req {
		cols[i] = fmt.Sprintf(`"%s"=$%d`, columns.Column(a.Field), i+1)
		values[i] = a.Value
	}

	return &CompiledClause{
		SQL:    strings.Join(cols, ", "),
		Values: values,
	}, nil
}
