// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlclause

// The helpers below decide presence by truthiness: a nil pointer, an empty
// string, a zero number and false are all treated as "not supplied".
// A bound of 0 therefore never reaches the WHERE clause.

// Text records name when v is a non-empty string.
func (c Criteria) Text(name string, v *string) Criteria {
	if v != nil && *v != "" {
		c[name] = *v
	}
	return c
}

// Int records name when v is non-zero.
func (c Criteria) Int(name string, v *int) Criteria {
	if v != nil && *v != 0 {
		c[name] = *v
	}
	return c
}

// Flag records name when v is true. A false flag is indistinguishable from
// an absent one.
func (c Criteria) Flag(name string, v *bool) Criteria {
	if v != nil && *v {
		c[name] = true
	}
	return c
}
