package aping

import (
	"fmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

// ModelFactory builds a model from the fields of a decoded JSON object.
type ModelFactory func(fields map[string]any) (entity.Model, error)

// ModelOf returns a ModelFactory producing *T.
func ModelOf[T any, PT interface {
	*T
	entity.Model
}]() ModelFactory {
	return func(fields map[string]any) (entity.Model, error) {
		m := PT(new(T))
		if err := entity.FromFields(fields, m); err != nil {
			return nil, err
		}

		return m, nil
	}
}

// ProcessResult casts a decoded result into models. Without a factory the raw
// result is returned. A JSON array gives []entity.Model, a JSON object gives a
// single entity.Model.
func ProcessResult(result any, model ModelFactory) (any, error) {
	if model == nil {
		return result, nil
	}

	switch r := result.(type) {
	case []any:
		out := make([]entity.Model, 0, len(r))
		for i, item := range r {
			fields, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d is %T, want object", ErrUnexpectedShape, i, item)
			}

			m, err := model(fields)
			if err != nil {
				return nil, fmt.Errorf("could not build item %d: %w", i, err)
			}
			out = append(out, m)
		}

		return out, nil
	case map[string]any:
		return model(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedShape, result)
	}
}

// One casts an object-shaped result into *T.
func One[T any, PT interface {
	*T
	entity.Model
}](result any) (PT, error) {
	if _, ok := result.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: %T, want object", ErrUnexpectedShape, result)
	}

	m, err := ProcessResult(result, ModelOf[T, PT]())
	if err != nil {
		return nil, err
	}

	return m.(PT), nil
}

// Many casts an array-shaped result into []*T.
func Many[T any, PT interface {
	*T
	entity.Model
}](result any) ([]PT, error) {
	if _, ok := result.([]any); !ok {
		return nil, fmt.Errorf("%w: %T, want array", ErrUnexpectedShape, result)
	}

	ms, err := ProcessResult(result, ModelOf[T, PT]())
	if err != nil {
		return nil, err
	}

	models := ms.([]entity.Model)
	out := make([]PT, 0, len(models))
	for _, m := range models {
		out = append(out, m.(PT))
	}

	return out, nil
}
