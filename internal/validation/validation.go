// Package validation checks request bodies before they reach a service.
// Struct bodies use validator tags. Partial updates are checked field by
// field against an UpdateSchema so that no unknown column reaches SQL.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/qolzam/jobly/internal/database/sqlclause"
)

// ErrValidation marks every error returned by this package.
var ErrValidation = fmt.Errorf("%w: validation failed", sqlclause.ErrInvalidArgument)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result, formatFieldError(fe.Field(), fe.Tag(), fe.Param()))
	}
	return wrap(result)
}

// Messages flattens a validation error into one message per problem.
func Messages(err error) []string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		out := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			out = append(out, e.Error())
		}
		return out
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}

func formatFieldError(field, tag, param string) error {
	switch tag {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min", "gte":
		return fmt.Errorf("%s must be at least %s", field, param)
	case "max", "lte":
		return fmt.Errorf("%s must be at most %s", field, param)
	case "email":
		return fmt.Errorf("%s must be a valid email", field)
	case "url":
		return fmt.Errorf("%s must be a valid URL", field)
	default:
		if param != "" {
			return fmt.Errorf("%s failed %s=%s", field, tag, param)
		}
		return fmt.Errorf("%s failed %s", field, tag)
	}
}

// validationError keeps the multierror reachable through errors.As while
// matching ErrValidation through errors.Is.
type validationError struct {
	errs *multierror.Error
}

func (e *validationError) Error() string {
	return "validation failed: " + strings.Join(Messages(e.errs), "; ")
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation || target == sqlclause.ErrInvalidArgument
}

func (e *validationError) Unwrap() error { return e.errs }

func wrap(errs *multierror.Error) error {
	if errs.ErrorOrNil() == nil {
		return nil
	}
	return &validationError{errs: errs}
}
