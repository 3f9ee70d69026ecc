package entity

import (
	"fmt"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

// enumTable maps enum values to their wire names. Index 0 is the unset value.
type enumTable []string

func (t enumTable) name(v int) string {
	if v <= 0 || v >= len(t) {
		return ""
	}

	return t[v]
}

func (t enumTable) parse(kind string, text []byte) (int, error) {
	for i := 1; i < len(t); i++ {
		if t[i] == string(text) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unknown %s %q", kind, text)
}

func (t enumTable) validate(kind string, v int) error {
	if v > 0 && v < len(t) {
		return nil
	}

	values := make([]any, 0, len(t)-1)
	for _, n := range t[1:] {
		values = append(values, n)
	}

	return errors.EnumFail(kind, "body", v, values)
}

type MarketProjection int

const (
	MarketProjectionCompetition MarketProjection = iota + 1
	MarketProjectionEvent
	MarketProjectionEventType
	MarketProjectionMarketStartTime
	MarketProjectionMarketDescription
	MarketProjectionRunnerDescription
	MarketProjectionRunnerMetadata
)

var marketProjectionNames = enumTable{"", "COMPETITION", "EVENT", "EVENT_TYPE", "MARKET_START_TIME", "MARKET_DESCRIPTION", "RUNNER_DESCRIPTION", "RUNNER_METADATA"}

func (e MarketProjection) Name() string { return marketProjectionNames.name(int(e)) }

func (e MarketProjection) Validate(strfmt.Registry) error { return marketProjectionNames.validate("marketProjection", int(e)) }

func (e MarketProjection) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *MarketProjection) UnmarshalText(text []byte) error {
	v, err := marketProjectionNames.parse("marketProjection", text)
	if err != nil {
		return err
	}

	*e = MarketProjection(v)
	return nil
}

type PriceData int

const (
	PriceDataSpAvailable PriceData = iota + 1
	PriceDataSpTraded
	PriceDataExBestOffers
	PriceDataExAllOffers
	PriceDataExTraded
)

var priceDataNames = enumTable{"", "SP_AVAILABLE", "SP_TRADED", "EX_BEST_OFFERS", "EX_ALL_OFFERS", "EX_TRADED"}

func (e PriceData) Name() string { return priceDataNames.name(int(e)) }

func (e PriceData) Validate(strfmt.Registry) error { return priceDataNames.validate("priceData", int(e)) }

func (e PriceData) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *PriceData) UnmarshalText(text []byte) error {
	v, err := priceDataNames.parse("priceData", text)
	if err != nil {
		return err
	}

	*e = PriceData(v)
	return nil
}

type OrderProjection int

const (
	OrderProjectionAll OrderProjection = iota + 1
	OrderProjectionExecutable
	OrderProjectionExecutionComplete
)

var orderProjectionNames = enumTable{"", "ALL", "EXECUTABLE", "EXECUTION_COMPLETE"}

func (e OrderProjection) Name() string { return orderProjectionNames.name(int(e)) }

func (e OrderProjection) Validate(strfmt.Registry) error { return orderProjectionNames.validate("orderProjection", int(e)) }

func (e OrderProjection) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *OrderProjection) UnmarshalText(text []byte) error {
	v, err := orderProjectionNames.parse("orderProjection", text)
	if err != nil {
		return err
	}

	*e = OrderProjection(v)
	return nil
}

type MatchProjection int

const (
	MatchProjectionNoRollup MatchProjection = iota + 1
	MatchProjectionRolledUpByPrice
	MatchProjectionRolledUpByAvgPrice
)

var matchProjectionNames = enumTable{"", "NO_ROLLUP", "ROLLED_UP_BY_PRICE", "ROLLED_UP_BY_AVG_PRICE"}

func (e MatchProjection) Name() string { return matchProjectionNames.name(int(e)) }

func (e MatchProjection) Validate(strfmt.Registry) error { return matchProjectionNames.validate("matchProjection", int(e)) }

func (e MatchProjection) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *MatchProjection) UnmarshalText(text []byte) error {
	v, err := matchProjectionNames.parse("matchProjection", text)
	if err != nil {
		return err
	}

	*e = MatchProjection(v)
	return nil
}

type MarketSort int

const (
	MarketSortMinimumTraded MarketSort = iota + 1
	MarketSortMaximumTraded
	MarketSortMinimumAvailable
	MarketSortMaximumAvailable
	MarketSortFirstToStart
	MarketSortLastToStart
)

var marketSortNames = enumTable{"", "MINIMUM_TRADED", "MAXIMUM_TRADED", "MINIMUM_AVAILABLE", "MAXIMUM_AVAILABLE", "FIRST_TO_START", "LAST_TO_START"}

func (e MarketSort) Name() string { return marketSortNames.name(int(e)) }

func (e MarketSort) Validate(strfmt.Registry) error { return marketSortNames.validate("marketSort", int(e)) }

func (e MarketSort) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *MarketSort) UnmarshalText(text []byte) error {
	v, err := marketSortNames.parse("marketSort", text)
	if err != nil {
		return err
	}

	*e = MarketSort(v)
	return nil
}

type MarketStatus int

const (
	MarketStatusInactive MarketStatus = iota + 1
	MarketStatusOpen
	MarketStatusSuspended
	MarketStatusClosed
)

var marketStatusNames = enumTable{"", "INACTIVE", "OPEN", "SUSPENDED", "CLOSED"}

func (e MarketStatus) Name() string { return marketStatusNames.name(int(e)) }

func (e MarketStatus) Validate(strfmt.Registry) error { return marketStatusNames.validate("marketStatus", int(e)) }

func (e MarketStatus) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *MarketStatus) UnmarshalText(text []byte) error {
	v, err := marketStatusNames.parse("marketStatus", text)
	if err != nil {
		return err
	}

	*e = MarketStatus(v)
	return nil
}

type RunnerStatus int

const (
	RunnerStatusActive RunnerStatus = iota + 1
	RunnerStatusWinner
	RunnerStatusLoser
	RunnerStatusPlaced
	RunnerStatusRemovedVacant
	RunnerStatusRemoved
	RunnerStatusHidden
)

var runnerStatusNames = enumTable{"", "ACTIVE", "WINNER", "LOSER", "PLACED", "REMOVED_VACANT", "REMOVED", "HIDDEN"}

func (e RunnerStatus) Name() string { return runnerStatusNames.name(int(e)) }

func (e RunnerStatus) Validate(strfmt.Registry) error { return runnerStatusNames.validate("runnerStatus", int(e)) }

func (e RunnerStatus) MarshalText() ([]byte, error) { return []byte(e.Name()), nil }

func (e *RunnerStatus) UnmarshalText(text []byte) error {
	v, err := runnerStatusNames.parse("runnerStatus", text)
	if err != nil {
		return err
	}

	*e = RunnerStatus(v)
	return nil
}
