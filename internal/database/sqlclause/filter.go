// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlclause

import (
	"fmt"
	"strings"
)

// Criteria holds the filter criteria considered present, keyed by name.
type Criteria map[string]interface{}

// Has reports whether every name is present.
func (c Criteria) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := c[name]; !ok {
			return false
		}
	}
	return true
}

// Predicate is one comparison of a rule. Expr contains exactly one %d verb
// which receives the placeholder number. The bound value is the criterion
// named by Criterion, or Literal when Criterion is empty.
type Predicate struct {
	Expr      string
	Criterion string
	Literal   interface{}
}

// Bind returns a predicate that binds the value of the named criterion.
func Bind(expr, criterion string) Predicate {
	return Predicate{Expr: expr, Criterion: criterion}
}

// BindLiteral returns a predicate that binds a fixed value.
func BindLiteral(expr string, value interface{}) Predicate {
	return Predicate{Expr: expr, Literal: value}
}

func (p Predicate) value(c Criteria) interface{} {
	if p.Criterion == "" {
		return p.Literal
	}
	return c[p.Criterion]
}

// Rule applies its predicates when all Requires criteria are present.
type Rule struct {
	Requires   []string
	Predicates []Predicate
}

// RuleTable is evaluated top to bottom; the first matching rule wins.
type RuleTable []Rule

// Match returns the index of the first rule satisfied by c, or -1.
func (t RuleTable) Match(c Criteria) int {
	if len(c) == 0 {
		return -1
	}
	for i, rule := range t {
		if c.Has(rule.Requires...) {
			return i
		}
	}
	return -1
}

// Compile renders the first matching rule as "WHERE p1 AND p2 ...".
// It returns nil when no criterion is present or no rule matches.
func (t RuleTable) Compile(c Criteria) *CompiledClause {
	i := t.Match(c)
	if i < 0 {
		return nil
	}

	rule := t[i]
	terms := make([]string, len(rule.Predicates))
	values := make([]interface{}, len(rule.Predicates))
	for n, p := range rule.Predicates {
		terms[n] = fmt.Sprintf(p.Expr, n+1)
		values[n] = p.value(c)
	}

	return &CompiledClause{
		SQL:    "WHERE " + strings.Join(terms, " AND "),
		Values: values,
	}
}
