// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/jobs/models"
)

const (
	criterionTitle     = "title"
	criterionMinSalary = "minSalary"
	criterionHasEquity = "hasEquity"
)

var (
	titleMatch = sqlclause.Bind("UPPER(title) LIKE UPPER($%d)", criterionTitle)
	salaryMin  = sqlclause.Bind("salary >= $%d", criterionMinSalary)
	hasEquity  = sqlclause.BindLiteral("equity > $%d", 0)
)

// FilterRules is evaluated top to bottom. A title with a minimum salary
// takes the first row, so hasEquity is not applied alongside both.
var FilterRules = sqlclause.RuleTable{
	{Requires: []string{criterionTitle, criterionMinSalary}, Predicates: []sqlclause.Predicate{titleMatch, salaryMin}},
	{Requires: []string{criterionTitle, criterionHasEquity}, Predicates: []sqlclause.Predicate{titleMatch, hasEquity}},
	{Requires: []string{criterionTitle}, Predicates: []sqlclause.Predicate{titleMatch}},
	{Requires: []string{criterionMinSalary, criterionHasEquity}, Predicates: []sqlclause.Predicate{salaryMin, hasEquity}},
	{Requires: []string{criterionMinSalary}, Predicates: []sqlclause.Predicate{salaryMin}},
	{Requires: []string{criterionHasEquity}, Predicates: []sqlclause.Predicate{hasEquity}},
}

// CompileFilter returns the WHERE clause for filter, or nil when no
// criterion is present.
func CompileFilter(filter models.JobFilter) *sqlclause.CompiledClause {
	criteria := sqlclause.Criteria{}.
		Text(criterionTitle, filter.Title).
		Int(criterionMinSalary, filter.MinSalary).
		Flag(criterionHasEquity, filter.HasEquity)
	return FilterRules.Compile(criteria)
}
