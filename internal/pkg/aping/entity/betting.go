package entity

import (
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

type TimeRange struct {
	From *strfmt.DateTime `json:"from,omitempty"`
	To   *strfmt.DateTime `json:"to,omitempty"`
}

func (m *TimeRange) Validate(strfmt.Registry) error {
	if m.From != nil && m.To != nil && time.Time(*m.To).Before(time.Time(*m.From)) {
		return errors.New(errors.InvalidTypeCode, "timeRange.to %s is before timeRange.from %s", m.To, m.From)
	}

	return nil
}

func (m *TimeRange) Serialize() (map[string]any, error) { return serialize(m) }

func (m *TimeRange) Items() map[string]any {
	return map[string]any{"from": m.From, "to": m.To}
}

// MarketFilter selects markets for the list* operations. An empty filter matches everything.
type MarketFilter struct {
	TextQuery         string     `json:"textQuery,omitempty"`
	EventTypeIDs      []string   `json:"eventTypeIds,omitempty"`
	EventIDs          []string   `json:"eventIds,omitempty"`
	CompetitionIDs    []string   `json:"competitionIds,omitempty"`
	MarketIDs         []string   `json:"marketIds,omitempty"`
	MarketCountries   []string   `json:"marketCountries,omitempty"`
	MarketTypeCodes   []string   `json:"marketTypeCodes,omitempty"`
	InPlayOnly        *bool      `json:"inPlayOnly,omitempty"`
	TurnInPlayEnabled *bool      `json:"turnInPlayEnabled,omitempty"`
	MarketStartTime   *TimeRange `json:"marketStartTime,omitempty"`
}

func (m *MarketFilter) Validate(formats strfmt.Registry) error {
	var res []error

	for path, ids := range map[string][]string{
		"eventTypeIds":   m.EventTypeIDs,
		"eventIds":       m.EventIDs,
		"competitionIds": m.CompetitionIDs,
		"marketIds":      m.MarketIDs,
	} {
		if err := validate.UniqueItems(path, "body", ids); err != nil {
			res = append(res, err)
		}
	}

	if m.MarketStartTime != nil {
		if err := m.MarketStartTime.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *MarketFilter) Serialize() (map[string]any, error) { return serialize(m) }

func (m *MarketFilter) Items() map[string]any {
	return map[string]any{
		"textQuery":         m.TextQuery,
		"eventTypeIds":      m.EventTypeIDs,
		"eventIds":          m.EventIDs,
		"competitionIds":    m.CompetitionIDs,
		"marketIds":         m.MarketIDs,
		"marketCountries":   m.MarketCountries,
		"marketTypeCodes":   m.MarketTypeCodes,
		"inPlayOnly":        m.InPlayOnly,
		"turnInPlayEnabled": m.TurnInPlayEnabled,
		"marketStartTime":   m.MarketStartTime,
	}
}

type EventType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m *EventType) Validate(strfmt.Registry) error {
	if err := validate.RequiredString("eventType.id", "body", m.ID); err != nil {
		return err
	}

	return nil
}

func (m *EventType) Serialize() (map[string]any, error) { return serialize(m) }

func (m *EventType) Items() map[string]any {
	return map[string]any{"id": m.ID, "name": m.Name}
}

type EventTypeResult struct {
	EventType   *EventType `json:"eventType"`
	MarketCount int        `json:"marketCount"`
}

func (m *EventTypeResult) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("eventType", "body", m.EventType); err != nil {
		res = append(res, err)
	} else if err := m.EventType.Validate(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.MinimumInt("marketCount", "body", int64(m.MarketCount), 0, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *EventTypeResult) Serialize() (map[string]any, error) { return serialize(m) }

func (m *EventTypeResult) Items() map[string]any {
	return map[string]any{"eventType": m.EventType, "marketCount": m.MarketCount}
}

type Competition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (m *Competition) Validate(strfmt.Registry) error {
	if err := validate.RequiredString("competition.id", "body", m.ID); err != nil {
		return err
	}

	return nil
}

func (m *Competition) Serialize() (map[string]any, error) { return serialize(m) }

func (m *Competition) Items() map[string]any {
	return map[string]any{"id": m.ID, "name": m.Name}
}

type CompetitionResult struct {
	Competition       *Competition `json:"competition"`
	MarketCount       int          `json:"marketCount"`
	CompetitionRegion string       `json:"competitionRegion,omitempty"`
}

func (m *CompetitionResult) Validate(formats strfmt.Registry) error {
	if err := validate.Required("competition", "body", m.Competition); err != nil {
		return err
	}

	return m.Competition.Validate(formats)
}

func (m *CompetitionResult) Serialize() (map[string]any, error) { return serialize(m) }

func (m *CompetitionResult) Items() map[string]any {
	return map[string]any{
		"competition":       m.Competition,
		"marketCount":       m.MarketCount,
		"competitionRegion": m.CompetitionRegion,
	}
}

type Event struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	CountryCode string           `json:"countryCode,omitempty"`
	Timezone    string           `json:"timezone,omitempty"`
	Venue       string           `json:"venue,omitempty"`
	OpenDate    *strfmt.DateTime `json:"openDate,omitempty"`
}

func (m *Event) Validate(strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("event.id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if m.CountryCode != "" {
		if err := validate.MaxLength("event.countryCode", "body", m.CountryCode, 2); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *Event) Serialize() (map[string]any, error) { return serialize(m) }

func (m *Event) Items() map[string]any {
	return map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"countryCode": m.CountryCode,
		"timezone":    m.Timezone,
		"venue":       m.Venue,
		"openDate":    m.OpenDate,
	}
}

type EventResult struct {
	Event       *Event `json:"event"`
	MarketCount int    `json:"marketCount"`
}

func (m *EventResult) Validate(formats strfmt.Registry) error {
	if err := validate.Required("event", "body", m.Event); err != nil {
		return err
	}

	return m.Event.Validate(formats)
}

func (m *EventResult) Serialize() (map[string]any, error) { return serialize(m) }

func (m *EventResult) Items() map[string]any {
	return map[string]any{"event": m.Event, "marketCount": m.MarketCount}
}

type MarketDescription struct {
	PersistenceEnabled bool             `json:"persistenceEnabled"`
	BspMarket          bool             `json:"bspMarket"`
	MarketTime         *strfmt.DateTime `json:"marketTime,omitempty"`
	SuspendTime        *strfmt.DateTime `json:"suspendTime,omitempty"`
	BettingType        string           `json:"bettingType"`
	TurnInPlayEnabled  bool             `json:"turnInPlayEnabled"`
	MarketType         string           `json:"marketType"`
	Regulator          string           `json:"regulator,omitempty"`
	MarketBaseRate     float64          `json:"marketBaseRate"`
	DiscountAllowed    bool             `json:"discountAllowed"`
	Wallet             string           `json:"wallet,omitempty"`
	Rules              string           `json:"rules,omitempty"`
}

func (m *MarketDescription) Validate(strfmt.Registry) error {
	if err := validate.RequiredString("description.marketType", "body", m.MarketType); err != nil {
		return err
	}

	return nil
}

func (m *MarketDescription) Serialize() (map[string]any, error) { return serialize(m) }

func (m *MarketDescription) Items() map[string]any {
	return map[string]any{
		"persistenceEnabled": m.PersistenceEnabled,
		"bspMarket":          m.BspMarket,
		"marketTime":         m.MarketTime,
		"suspendTime":        m.SuspendTime,
		"bettingType":        m.BettingType,
		"turnInPlayEnabled":  m.TurnInPlayEnabled,
		"marketType":         m.MarketType,
		"regulator":          m.Regulator,
		"marketBaseRate":     m.MarketBaseRate,
		"discountAllowed":    m.DiscountAllowed,
		"wallet":             m.Wallet,
		"rules":              m.Rules,
	}
}

type RunnerCatalog struct {
	SelectionID  int64             `json:"selectionId"`
	RunnerName   string            `json:"runnerName"`
	Handicap     float64           `json:"handicap"`
	SortPriority int               `json:"sortPriority"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

func (m *RunnerCatalog) Validate(strfmt.Registry) error {
	if err := validate.MinimumInt("selectionId", "body", m.SelectionID, 0, true); err != nil {
		return err
	}

	return nil
}

func (m *RunnerCatalog) Serialize() (map[string]any, error) { return serialize(m) }

func (m *RunnerCatalog) Items() map[string]any {
	return map[string]any{
		"selectionId":  m.SelectionID,
		"runnerName":   m.RunnerName,
		"handicap":     m.Handicap,
		"sortPriority": m.SortPriority,
		"metadata":     m.Metadata,
	}
}

type MarketCatalogue struct {
	MarketID        string             `json:"marketId"`
	MarketName      string             `json:"marketName"`
	MarketStartTime *strfmt.DateTime   `json:"marketStartTime,omitempty"`
	Description     *MarketDescription `json:"description,omitempty"`
	TotalMatched    float64            `json:"totalMatched"`
	Runners         []*RunnerCatalog   `json:"runners,omitempty"`
	EventType       *EventType         `json:"eventType,omitempty"`
	Competition     *Competition       `json:"competition,omitempty"`
	Event           *Event             `json:"event,omitempty"`
}

func (m *MarketCatalogue) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("marketId", "body", m.MarketID); err != nil {
		res = append(res, err)
	}

	nested := []Model{}
	if m.Description != nil {
		nested = append(nested, m.Description)
	}
	if m.EventType != nil {
		nested = append(nested, m.EventType)
	}
	if m.Competition != nil {
		nested = append(nested, m.Competition)
	}
	if m.Event != nil {
		nested = append(nested, m.Event)
	}
	for _, r := range m.Runners {
		if r != nil {
			nested = append(nested, r)
		}
	}

	for _, n := range nested {
		if err := n.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *MarketCatalogue) Serialize() (map[string]any, error) { return serialize(m) }

func (m *MarketCatalogue) Items() map[string]any {
	return map[string]any{
		"marketId":        m.MarketID,
		"marketName":      m.MarketName,
		"marketStartTime": m.MarketStartTime,
		"description":     m.Description,
		"totalMatched":    m.TotalMatched,
		"runners":         m.Runners,
		"eventType":       m.EventType,
		"competition":     m.Competition,
		"event":           m.Event,
	}
}

type PriceProjection struct {
	PriceData      []PriceData `json:"priceData,omitempty"`
	Virtualise     *bool       `json:"virtualise,omitempty"`
	RolloverStakes *bool       `json:"rolloverStakes,omitempty"`
}

func (m *PriceProjection) Validate(formats strfmt.Registry) error {
	var res []error

	for _, pd := range m.PriceData {
		if err := pd.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *PriceProjection) Serialize() (map[string]any, error) { return serialize(m) }

func (m *PriceProjection) Items() map[string]any {
	return map[string]any{
		"priceData":      m.PriceData,
		"virtualise":     m.Virtualise,
		"rolloverStakes": m.RolloverStakes,
	}
}

type PriceSize struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

func (m *PriceSize) Validate(strfmt.Registry) error {
	if err := validate.Minimum("price", "body", m.Price, 1, false); err != nil {
		return err
	}

	return nil
}

func (m *PriceSize) Serialize() (map[string]any, error) { return serialize(m) }

func (m *PriceSize) Items() map[string]any {
	return map[string]any{"price": m.Price, "size": m.Size}
}

type ExchangePrices struct {
	AvailableToBack []*PriceSize `json:"availableToBack,omitempty"`
	AvailableToLay  []*PriceSize `json:"availableToLay,omitempty"`
	TradedVolume    []*PriceSize `json:"tradedVolume,omitempty"`
}

func (m *ExchangePrices) Validate(formats strfmt.Registry) error {
	var res []error

	for _, ladder := range [][]*PriceSize{m.AvailableToBack, m.AvailableToLay, m.TradedVolume} {
		for _, ps := range ladder {
			if ps == nil {
				continue
			}
			if err := ps.Validate(formats); err != nil {
				res = append(res, err)
			}
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *ExchangePrices) Serialize() (map[string]any, error) { return serialize(m) }

func (m *ExchangePrices) Items() map[string]any {
	return map[string]any{
		"availableToBack": m.AvailableToBack,
		"availableToLay":  m.AvailableToLay,
		"tradedVolume":    m.TradedVolume,
	}
}

type Runner struct {
	SelectionID      int64            `json:"selectionId"`
	Handicap         float64          `json:"handicap"`
	Status           RunnerStatus     `json:"status"`
	AdjustmentFactor float64          `json:"adjustmentFactor,omitempty"`
	LastPriceTraded  float64          `json:"lastPriceTraded,omitempty"`
	TotalMatched     float64          `json:"totalMatched,omitempty"`
	RemovalDate      *strfmt.DateTime `json:"removalDate,omitempty"`
	Ex               *ExchangePrices  `json:"ex,omitempty"`
}

func (m *Runner) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinimumInt("selectionId", "body", m.SelectionID, 0, true); err != nil {
		res = append(res, err)
	}

	if err := m.Status.Validate(formats); err != nil {
		res = append(res, err)
	}

	if m.Ex != nil {
		if err := m.Ex.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *Runner) Serialize() (map[string]any, error) { return serialize(m) }

func (m *Runner) Items() map[string]any {
	return map[string]any{
		"selectionId":      m.SelectionID,
		"handicap":         m.Handicap,
		"status":           m.Status,
		"adjustmentFactor": m.AdjustmentFactor,
		"lastPriceTraded":  m.LastPriceTraded,
		"totalMatched":     m.TotalMatched,
		"removalDate":      m.RemovalDate,
		"ex":               m.Ex,
	}
}

type MarketBook struct {
	MarketID              string           `json:"marketId"`
	IsMarketDataDelayed   bool             `json:"isMarketDataDelayed"`
	Status                MarketStatus     `json:"status,omitempty"`
	BetDelay              int              `json:"betDelay,omitempty"`
	BspReconciled         bool             `json:"bspReconciled,omitempty"`
	Complete              bool             `json:"complete,omitempty"`
	InPlay                bool             `json:"inplay,omitempty"`
	NumberOfWinners       int              `json:"numberOfWinners,omitempty"`
	NumberOfRunners       int              `json:"numberOfRunners,omitempty"`
	NumberOfActiveRunners int              `json:"numberOfActiveRunners,omitempty"`
	LastMatchTime         *strfmt.DateTime `json:"lastMatchTime,omitempty"`
	TotalMatched          float64          `json:"totalMatched,omitempty"`
	TotalAvailable        float64          `json:"totalAvailable,omitempty"`
	CrossMatching         bool             `json:"crossMatching,omitempty"`
	RunnersVoidable       bool             `json:"runnersVoidable,omitempty"`
	Version               int64            `json:"version,omitempty"`
	Runners               []*Runner        `json:"runners,omitempty"`
}

func (m *MarketBook) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("marketId", "body", m.MarketID); err != nil {
		res = append(res, err)
	}

	if m.Status != 0 {
		if err := m.Status.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	for _, r := range m.Runners {
		if r == nil {
			continue
		}
		if err := r.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *MarketBook) Serialize() (map[string]any, error) { return serialize(m) }

func (m *MarketBook) Items() map[string]any {
	items := map[string]any{
		"marketId":              m.MarketID,
		"isMarketDataDelayed":   m.IsMarketDataDelayed,
		"betDelay":              m.BetDelay,
		"bspReconciled":         m.BspReconciled,
		"complete":              m.Complete,
		"inplay":                m.InPlay,
		"numberOfWinners":       m.NumberOfWinners,
		"numberOfRunners":       m.NumberOfRunners,
		"numberOfActiveRunners": m.NumberOfActiveRunners,
		"lastMatchTime":         m.LastMatchTime,
		"totalMatched":          m.TotalMatched,
		"totalAvailable":        m.TotalAvailable,
		"crossMatching":         m.CrossMatching,
		"runnersVoidable":       m.RunnersVoidable,
		"version":               m.Version,
		"runners":               m.Runners,
	}

	// status is optional on a book
	if m.Status != 0 {
		items["status"] = m.Status
	}

	return items
}
