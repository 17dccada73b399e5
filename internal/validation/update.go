package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/qolzam/jobly/internal/database/sqlclause"
)

// Kind is the JSON type a partial update field must carry.
type Kind int

const (
	KindString Kind = iota
	// KindInt values must fit a PostgreSQL INTEGER column.
	KindInt
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	}
	return "unknown"
}

// FieldRule describes one updatable field. Tag is a validator tag applied
// to non-null values.
type FieldRule struct {
	Kind     Kind
	Nullable bool
	Tag      string
}

// UpdateSchema lists the fields a partial update may carry.
type UpdateSchema map[string]FieldRule

// Validate checks every assignment of req. Integer fields are normalized to
// int64 and number fields to float64 in place.
func (s UpdateSchema) Validate(req sqlclause.UpdateRequest) error {
	var result *multierror.Error

	for i, a := range req {
		rule, ok := s[a.Field]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("%s is not allowed", a.Field))
			continue
		}

		if a.Value == nil {
			if !rule.Nullable {
				result = multierror.Append(result, fmt.Errorf("%s must not be null", a.Field))
			}
			continue
		}

		v, err := coerce(rule.Kind, a.Value)
		if errors.Is(err, errOutOfRange) {
			result = multierror.Append(result, fmt.Errorf("%s must be between %d and %d", a.Field, math.MinInt32, math.MaxInt32))
			continue
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s must be of type %s", a.Field, rule.Kind))
			continue
		}
		req[i].Value = v

		if rule.Tag == "" {
			continue
		}
		if err := instance().Var(v, rule.Tag); err != nil {
			result = multierror.Append(result, tagError(a.Field, err))
		}
	}

	return wrap(result)
}

var (
	errWrongKind  = errors.New("wrong kind")
	errOutOfRange = errors.New("out of range")
)

func coerce(kind Kind, v interface{}) (interface{}, error) {
	switch kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		switch n := v.(type) {
		case int64:
			return int32Range(n)
		case int:
			return int32Range(int64(n))
		case float64:
			if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
				return nil, errWrongKind
			}
			// Compare as float first so the conversion below is defined.
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, errOutOfRange
			}
			return int64(n), nil
		}
	case KindNumber:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
	}
	return nil, errWrongKind
}

func int32Range(n int64) (interface{}, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, errOutOfRange
	}
	return n, nil
}

func tagError(field string, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return formatFieldError(field, fe.Tag(), fe.Param())
	}
	return err
}
