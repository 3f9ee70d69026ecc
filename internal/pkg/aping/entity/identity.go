package entity

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

const LoginStatusSuccess = "SUCCESS"

// LoginResponse is the body returned by the identity endpoints (login, keepAlive, logout).
type LoginResponse struct {
	Token   string `json:"token"`
	Product string `json:"product"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

func (m *LoginResponse) Validate(strfmt.Registry) error {
	if err := validate.RequiredString("status", "body", m.Status); err != nil {
		return err
	}

	return nil
}

func (m *LoginResponse) Serialize() (map[string]any, error) { return serialize(m) }

func (m *LoginResponse) Items() map[string]any {
	return map[string]any{
		"token":   m.Token,
		"product": m.Product,
		"status":  m.Status,
		"error":   m.Error,
	}
}

func (m *LoginResponse) Succeeded() bool {
	return m.Status == LoginStatusSuccess
}
