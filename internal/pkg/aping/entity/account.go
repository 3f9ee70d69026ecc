package entity

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

type AccountFundsResponse struct {
	AvailableToBetBalance float64 `json:"availableToBetBalance"`
	Exposure              float64 `json:"exposure"`
	RetainedCommission    float64 `json:"retainedCommission"`
	ExposureLimit         float64 `json:"exposureLimit"`
	DiscountRate          float64 `json:"discountRate"`
	PointsBalance         int     `json:"pointsBalance"`
	Wallet                string  `json:"wallet,omitempty"`
}

func (m *AccountFundsResponse) Validate(strfmt.Registry) error {
	if err := validate.MinimumInt("pointsBalance", "body", int64(m.PointsBalance), 0, false); err != nil {
		return err
	}

	return nil
}

func (m *AccountFundsResponse) Serialize() (map[string]any, error) { return serialize(m) }

func (m *AccountFundsResponse) Items() map[string]any {
	return map[string]any{
		"availableToBetBalance": m.AvailableToBetBalance,
		"exposure":              m.Exposure,
		"retainedCommission":    m.RetainedCommission,
		"exposureLimit":         m.ExposureLimit,
		"discountRate":          m.DiscountRate,
		"pointsBalance":         m.PointsBalance,
		"wallet":                m.Wallet,
	}
}

type AccountDetailsResponse struct {
	CurrencyCode  string  `json:"currencyCode"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	LocaleCode    string  `json:"localeCode"`
	Region        string  `json:"region"`
	Timezone      string  `json:"timezone"`
	DiscountRate  float64 `json:"discountRate"`
	PointsBalance int     `json:"pointsBalance"`
	CountryCode   string  `json:"countryCode"`
}

func (m *AccountDetailsResponse) Validate(strfmt.Registry) error {
	if err := validate.RequiredString("currencyCode", "body", m.CurrencyCode); err != nil {
		return err
	}

	return nil
}

func (m *AccountDetailsResponse) Serialize() (map[string]any, error) { return serialize(m) }

func (m *AccountDetailsResponse) Items() map[string]any {
	return map[string]any{
		"currencyCode":  m.CurrencyCode,
		"firstName":     m.FirstName,
		"lastName":      m.LastName,
		"localeCode":    m.LocaleCode,
		"region":        m.Region,
		"timezone":      m.Timezone,
		"discountRate":  m.DiscountRate,
		"pointsBalance": m.PointsBalance,
		"countryCode":   m.CountryCode,
	}
}
