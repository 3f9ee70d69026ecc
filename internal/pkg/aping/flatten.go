package aping

import (
	"fmt"
	"reflect"
)

// itemizer is the field view every entity.Model exposes.
type itemizer interface {
	Items() map[string]any
}

// ModelToDict replaces models, recursively, with plain maps. A list is
// flattened element by element and every element must be a model or a list.
// Only non-list field values of a model are flattened best effort.
func ModelToDict(v any) (any, error) {
	if list, ok := asList(v); ok {
		return flattenList(list)
	}

	items, err := itemsOf(v)
	if err != nil {
		return nil, err
	}

	d := make(map[string]any, len(items))
	for k, val := range items {
		if list, ok := asList(val); ok {
			flat, err := flattenList(list)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", k, err)
			}
			d[k] = flat
			continue
		}

		d[k] = flattenLeaf(val)
	}

	return d, nil
}

func flattenList(list reflect.Value) ([]any, error) {
	out := make([]any, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		flat, err := ModelToDict(list.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		out = append(out, flat)
	}

	return out, nil
}

// flattenLeaf is best effort: a value that cannot be flattened is kept as is.
func flattenLeaf(v any) any {
	flat, err := ModelToDict(v)
	if err != nil {
		return v
	}

	return flat
}

func itemsOf(v any) (map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotModel)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrNotModel, v)
	}

	switch m := v.(type) {
	case itemizer:
		return m.Items(), nil
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotModel, v)
	}
}

// asList reports whether v is a slice or array. Byte slices are values, not lists.
func asList(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	default:
		return reflect.Value{}, false
	}
}
