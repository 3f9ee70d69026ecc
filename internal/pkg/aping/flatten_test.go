package aping

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

func TestModelToDict(t *testing.T) {
	dt := strfmt.DateTime{}

	tests := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "flat model",
			input: &sample{A: 1},
			want:  map[string]any{"a": 1, "child": (*sample)(nil)},
		},
		{
			name:  "nested model",
			input: &sample{A: 1, Child: &sample{A: 2}},
			want: map[string]any{
				"a":     1,
				"child": map[string]any{"a": 2, "child": (*sample)(nil)},
			},
		},
		{
			name:  "list of models",
			input: []*sample{{A: 1}, {A: 2}},
			want: []any{
				map[string]any{"a": 1, "child": (*sample)(nil)},
				map[string]any{"a": 2, "child": (*sample)(nil)},
			},
		},
		{
			name:  "list fields of models",
			input: &entity.ExchangePrices{AvailableToBack: []*entity.PriceSize{{Price: 1.5, Size: 2}}},
			want: map[string]any{
				"availableToBack": []any{map[string]any{"price": 1.5, "size": float64(2)}},
				"availableToLay":  []any{},
				"tradedVolume":    []any{},
			},
		},
		{
			name:  "plain map recurses",
			input: map[string]any{"inner": map[string]any{"x": &sample{A: 3}}, "when": &dt},
			want: map[string]any{
				"inner": map[string]any{"x": map[string]any{"a": 3, "child": (*sample)(nil)}},
				"when":  &dt,
			},
		},
		{
			name:  "nested list of models",
			input: []any{[]any{&sample{A: 4}}, map[string]any{}},
			want:  []any{[]any{map[string]any{"a": 4, "child": (*sample)(nil)}}, map[string]any{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModelToDict(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModelToDict_EnumLeafKept(t *testing.T) {
	got, err := ModelToDict(&entity.Runner{SelectionID: 1, Status: entity.RunnerStatusWinner})
	require.NoError(t, err)

	assert.Equal(t, entity.RunnerStatusWinner, got.(map[string]any)["status"])
}

func TestModelToDict_NotAModel(t *testing.T) {
	for _, input := range []any{nil, 42, "x", (*sample)(nil)} {
		_, err := ModelToDict(input)
		assert.ErrorIs(t, err, ErrNotModel, "%#v", input)
	}
}

func TestModelToDict_ListItemsMustBeModels(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "top level scalars", input: []any{1, "x"}},
		{name: "nested scalar", input: []any{&sample{A: 1}, []any{"b"}}},
		{name: "list field of scalars", input: &entity.MarketFilter{EventTypeIDs: []string{"1"}}},
		{name: "nil item", input: []*sample{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ModelToDict(tt.input)
			assert.ErrorIs(t, err, ErrNotModel)
		})
	}
}
