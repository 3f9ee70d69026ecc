package aping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

func TestProcessResult(t *testing.T) {
	factory := ModelOf[sample]()

	tests := []struct {
		name    string
		result  any
		model   ModelFactory
		want    any
		wantErr error
	}{
		{
			name:   "no model returns raw result",
			result: map[string]any{"a": float64(1)},
			want:   map[string]any{"a": float64(1)},
		},
		{
			name:   "list of objects",
			result: []any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(2)}},
			model:  factory,
			want:   []entity.Model{&sample{A: 1}, &sample{A: 2}},
		},
		{
			name:   "single object",
			result: map[string]any{"a": float64(1)},
			model:  factory,
			want:   &sample{A: 1},
		},
		{
			name:   "nested object",
			result: map[string]any{"a": float64(1), "child": map[string]any{"a": float64(2)}},
			model:  factory,
			want:   &sample{A: 1, Child: &sample{A: 2}},
		},
		{
			name:   "empty list",
			result: []any{},
			model:  factory,
			want:   []entity.Model{},
		},
		{
			name:    "scalar result",
			result:  "OK",
			model:   factory,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "list of scalars",
			result:  []any{float64(1)},
			model:   factory,
			wantErr: ErrUnexpectedShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProcessResult(tt.result, tt.model)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOneAndMany(t *testing.T) {
	book, err := One[entity.MarketBook](map[string]any{
		"marketId":      "1.234",
		"status":        "OPEN",
		"version":       float64(42),
		"lastMatchTime": "2024-05-01T12:30:00.000Z",
		"runners": []any{
			map[string]any{
				"selectionId": float64(47972),
				"status":      "ACTIVE",
				"ex": map[string]any{
					"availableToBack": []any{map[string]any{"price": 2.5, "size": 10.0}},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1.234", book.MarketID)
	assert.Equal(t, entity.MarketStatusOpen, book.Status)
	assert.EqualValues(t, 42, book.Version)
	require.NotNil(t, book.LastMatchTime)
	assert.True(t, time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC).Equal(time.Time(*book.LastMatchTime)))
	require.Len(t, book.Runners, 1)
	assert.EqualValues(t, 47972, book.Runners[0].SelectionID)
	assert.Equal(t, entity.RunnerStatusActive, book.Runners[0].Status)
	assert.Equal(t, 2.5, book.Runners[0].Ex.AvailableToBack[0].Price)

	types, err := Many[entity.EventTypeResult]([]any{
		map[string]any{"eventType": map[string]any{"id": "1", "name": "Soccer"}, "marketCount": float64(12)},
		map[string]any{"eventType": map[string]any{"id": "7", "name": "Horse Racing"}, "marketCount": float64(3)},
	})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Horse Racing", types[1].EventType.Name)
	assert.Equal(t, 12, types[0].MarketCount)
}

func TestOneAndMany_WrongShape(t *testing.T) {
	_, err := One[entity.MarketBook]([]any{})
	assert.ErrorIs(t, err, ErrUnexpectedShape)

	_, err = Many[entity.MarketBook](map[string]any{"marketId": "1.2"})
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestOne_UnknownEnumName(t *testing.T) {
	_, err := One[entity.MarketBook](map[string]any{"marketId": "1.2", "status": "HALF_OPEN"})
	assert.Error(t, err)
}
