package validation

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/gorilla/schema"
	"github.com/hashicorp/go-multierror"
)

var (
	queryOnce    sync.Once
	queryDecoder *schema.Decoder
)

func decoder() *schema.Decoder {
	queryOnce.Do(func() {
		queryDecoder = schema.NewDecoder()
		queryDecoder.IgnoreUnknownKeys(false)
	})
	return queryDecoder
}

// Query decodes a query string into dst using its `schema` tags. Unknown
// keys and unparseable values are validation errors.
func Query(dst interface{}, values url.Values) error {
	err := decoder().Decode(dst, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result *multierror.Error
	for _, k := range keys {
		result = multierror.Append(result, queryError(k, multi[k]))
	}
	return wrap(result)
}

func queryError(key string, err error) error {
	var unknown schema.UnknownKeyError
	if errors.As(err, &unknown) {
		return fmt.Errorf("%s is not allowed", unknown.Key)
	}
	var conv schema.ConversionError
	if errors.As(err, &conv) {
		return fmt.Errorf("%s must be of type %s", key, conv.Type)
	}
	return err
}
