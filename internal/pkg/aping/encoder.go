package aping

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

var modelType = reflect.TypeOf((*entity.Model)(nil)).Elem()

// Marshal encodes v as JSON. Times become ISO-8601 strings, models are
// validated and serialized, enums are validated and written by name.
func Marshal(v any) ([]byte, error) {
	prepared, err := Prepare(v)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(prepared)
	if err != nil {
		return nil, fmt.Errorf("could not marshal %T: %w", v, err)
	}

	return b, nil
}

// Prepare rewrites v into values encoding/json handles natively. A model that
// fails validation aborts with the model's own error.
func Prepare(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	// Models have pointer receivers; a model passed by value is validated all the same.
	if rv.Kind() == reflect.Struct && reflect.PointerTo(rv.Type()).Implements(modelType) {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		return Prepare(ptr.Interface())
	}

	switch t := v.(type) {
	case time.Time:
		return t.Format(strfmt.RFC3339Millis), nil
	case strfmt.DateTime:
		return time.Time(t).Format(strfmt.RFC3339Millis), nil
	case *strfmt.DateTime:
		return time.Time(*t).Format(strfmt.RFC3339Millis), nil
	case entity.Model:
		if err := t.Validate(strfmt.Default); err != nil {
			return nil, err
		}

		fields, err := t.Serialize()
		if err != nil {
			return nil, fmt.Errorf("could not serialize %T: %w", t, err)
		}

		return Prepare(fields)
	case entity.Enum:
		if err := t.Validate(strfmt.Default); err != nil {
			return nil, err
		}

		return t.Name(), nil
	case entity.Payload:
		return preparePayload(&t)
	case *entity.Payload:
		return preparePayload(t)
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v, nil
		}

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, err := Prepare(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = item
		}

		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil
		}

		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := Prepare(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}

		return out, nil
	default:
		return v, nil
	}
}

func preparePayload(p *entity.Payload) (any, error) {
	params, err := Prepare(p.Params)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"jsonrpc": p.JSONRPC,
		"method":  p.Method,
		"params":  params,
		"id":      p.ID,
	}, nil
}
