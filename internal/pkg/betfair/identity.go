package betfair

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

// LoginError is returned when the identity endpoint answers with a status other than SUCCESS.
type LoginError struct {
	Action string
	Status string
	Code   string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("%s failed: %s (%s)", e.Action, e.Status, e.Code)
}

// Login opens a session with the interactive login endpoint and stores its token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	lr, err := c.identityCall(ctx, "login", form)
	if err != nil {
		return err
	}

	c.setSessionToken(lr.Token)
	return nil
}

var keepAlive = aping.RequiresLogin(func(ctx context.Context, c *Client, _ struct{}) (*entity.LoginResponse, error) {
	return c.identityCall(ctx, "keepAlive", nil)
})

var logout = aping.RequiresLogin(func(ctx context.Context, c *Client, _ struct{}) (*entity.LoginResponse, error) {
	return c.identityCall(ctx, "logout", nil)
})

// KeepAlive extends the current session.
func (c *Client) KeepAlive(ctx context.Context) error {
	lr, err := keepAlive(ctx, c, struct{}{})
	if err != nil {
		return err
	}

	if lr.Token != "" {
		c.setSessionToken(lr.Token)
	}

	return nil
}

// Logout ends the current session and forgets its token.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := logout(ctx, c, struct{}{}); err != nil {
		return err
	}

	c.setSessionToken("")
	return nil
}

func (c *Client) identityCall(ctx context.Context, action string, form url.Values) (*entity.LoginResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoints.Identity, "/")+"/"+action,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create %s request: %w", action, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderApplication, c.appKey)
	if token := c.SessionToken(); token != "" {
		req.Header.Set(HeaderAuthentication, token)
	}

	resp, err := c.do(req, action)
	if err != nil {
		return nil, err
	}

	if err := aping.CheckStatusCode(resp); err != nil {
		c.observe(action, metrics.StatusFail)
		return nil, err
	}

	body, err := resp.JSON()
	if err != nil {
		c.observe(action, metrics.StatusFail)
		return nil, fmt.Errorf("%w: %w", aping.ErrUndecodableReply, &aping.ApiError{Response: resp})
	}

	lr, err := aping.One[entity.LoginResponse](body)
	if err != nil {
		c.observe(action, metrics.StatusFail)
		return nil, fmt.Errorf("could not decode %s response: %w", action, err)
	}

	if !lr.Succeeded() {
		c.observe(action, metrics.StatusFail)
		return nil, &LoginError{Action: action, Status: lr.Status, Code: lr.Error}
	}

	c.observe(action, metrics.StatusOk)
	return lr, nil
}
