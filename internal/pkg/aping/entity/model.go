package entity

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/mitchellh/mapstructure"
)

// Model is a typed API-NG entity: it can be built from decoded JSON fields,
// validate itself, serialize to a plain mapping and expose its fields.
type Model interface {
	Validate(formats strfmt.Registry) error
	Serialize() (map[string]any, error)
	Items() map[string]any
}

// Enum is an enumerated API-NG value, encoded on the wire by its symbolic name.
type Enum interface {
	Name() string
	Validate(formats strfmt.Registry) error
}

// FromFields fills target (a pointer to a model struct) from a decoded JSON object.
// Keys are matched against json tag names; text values are parsed into
// enums and strfmt.DateTime through their UnmarshalText.
func FromFields(fields map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     target,
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("could not create decoder for %T: %w", target, err)
	}

	if err := decoder.Decode(fields); err != nil {
		return fmt.Errorf("could not decode %T: %w", target, err)
	}

	return nil
}

func serialize(m any) (map[string]any, error) {
	b, err := swag.WriteJSON(m)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := swag.ReadJSON(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}
