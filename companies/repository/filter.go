// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/sqlclause"
)

// Criterion names.
const (
	criterionName = "name"
	criterionMin  = "minEmployees"
	criterionMax  = "maxEmployees"
)

var (
	nameMatch = sqlclause.Bind("UPPER(name) LIKE UPPER($%d)", criterionName)
	minBound  = sqlclause.Bind("num_employees >= $%d", criterionMin)
	maxBound  = sqlclause.Bind("num_employees <= $%d", criterionMax)
)

// FilterRules is evaluated top to bottom. When name, min and max are all
// present the first row applies and the maximum bound is not part of the
// clause.
var FilterRules = sqlclause.RuleTable{
	{Requires: []string{criterionName, criterionMin, criterionMax}, Predicates: []sqlclause.Predicate{nameMatch, minBound}},
	{Requires: []string{criterionName, criterionMin}, Predicates: []sqlclause.Predicate{nameMatch, minBound}},
	{Requires: []string{criterionName, criterionMax}, Predicates: []sqlclause.Predicate{nameMatch, maxBound}},
	{Requires: []string{criterionName}, Predicates: []sqlclause.Predicate{nameMatch}},
	{Requires: []string{criterionMin, criterionMax}, Predicates: []sqlclause.Predicate{minBound, maxBound}},
	{Requires: []string{criterionMin}, Predicates: []sqlclause.Predicate{minBound}},
	{Requires: []string{criterionMax}, Predicates: []sqlclause.Predicate{maxBound}},
}

// ColumnNames maps request fields to company columns.
var ColumnNames = sqlclause.ColumnNameMap{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// CompileFilter returns the WHERE clause for filter, or nil when no
// criterion is present.
func CompileFilter(filter models.CompanyFilter) *sqlclause.CompiledClause {
	criteria := sqlclause.Criteria{}.
		Text(criterionName, filter.NameLike).
		Int(criterionMin, filter.MinEmployees).
		Int(criterionMax, filter.MaxEmployees)
	return FilterRules.Compile(criteria)
}
