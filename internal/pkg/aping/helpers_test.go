package aping

import (
	"errors"
	"net/http"

	"github.com/go-openapi/strfmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

var errNegative = errors.New("a must not be negative")

type sample struct {
	A     int     `json:"a"`
	Child *sample `json:"child,omitempty"`
}

func (s *sample) Validate(strfmt.Registry) error {
	if s.A < 0 {
		return errNegative
	}

	return nil
}

func (s *sample) Serialize() (map[string]any, error) {
	out := map[string]any{"a": s.A}
	if s.Child != nil {
		out["child"] = s.Child
	}

	return out, nil
}

func (s *sample) Items() map[string]any {
	return map[string]any{"a": s.A, "child": s.Child}
}

func jsonResponse(status int, body string) *entity.Response {
	return &entity.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       []byte(body),
	}
}
