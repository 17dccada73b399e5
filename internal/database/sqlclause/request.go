// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlclause

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// orderedJSON keeps numbers as json.Number so integers survive the round trip.
var orderedJSON = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// ParseUpdateRequest reads a JSON object into an UpdateRequest, keeping the
// order in which keys appear in the document. Values must be scalars or null.
// A repeated key keeps its first position and its last value.
func ParseUpdateRequest(body []byte) (UpdateRequest, error) {
	iter := orderedJSON.BorrowIterator(body)
	defer orderedJSON.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: update body must be a JSON object", ErrInvalidArgument)
	}

	req := UpdateRequest{}
	var fieldErr error
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		value, err := scalar(it.Read())
		if err != nil {
			fieldErr = fmt.Errorf("%w: field %q %v", ErrInvalidArgument, field, err)
			return false
		}
		if !req.Set(field, value) {
			req = append(req, Assignment{Field: field, Value: value})
		}
		return true
	})
	if fieldErr != nil {
		return nil, fieldErr
	}
	if iter.Error != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidArgument, iter.Error)
	}
	// Only whitespace may follow the object. At end of input the iterator
	// reports InvalidValue and records io.EOF.
	if iter.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the update object", ErrInvalidArgument)
	}
	return req, nil
}

var (
	errNotNumber = errors.New("is not a valid number")
	errNotScalar = errors.New("must be a string, number, boolean or null")
)

func scalar(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case nil, string, bool:
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, errNotNumber
		}
		return f, nil
	default:
		return nil, errNotScalar
	}
}
