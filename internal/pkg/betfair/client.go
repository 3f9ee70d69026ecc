package betfair

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

const (
	HeaderApplication    = "X-Application"
	HeaderAuthentication = "X-Authentication"
)

type Endpoints struct {
	Betting  string
	Account  string
	Identity string
}

const (
	DefaultBettingURL  = "https://api.betfair.com/exchange/betting/json-rpc/v1"
	DefaultAccountURL  = "https://api.betfair.com/exchange/account/json-rpc/v1"
	DefaultIdentityURL = "https://identitysso.betfair.com/api"
)

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Betting:  DefaultBettingURL,
		Account:  DefaultAccountURL,
		Identity: DefaultIdentityURL,
	}
}

type Client struct {
	appKey     string
	httpClient *http.Client
	metrics    *metrics.Store
	endpoints  Endpoints
	limiter    *rate.Limiter

	mu           sync.RWMutex
	sessionToken string
}

type Option func(c *Client)

func WithEndpoints(endpoints Endpoints) Option {
	return func(c *Client) {
		c.endpoints = endpoints
	}
}

// WithRateLimit throttles outgoing requests. A zero limit disables throttling.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.sessionToken = token
	}
}

func NewClient(appKey string, httpClient *http.Client, metricsStore *metrics.Store, opts ...Option) *Client {
	c := &Client{
		appKey:     appKey,
		httpClient: httpClient,
		metrics:    metricsStore,
		endpoints:  DefaultEndpoints(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sessionToken
}

func (c *Client) setSessionToken(token string) {
	c.mu.Lock()
	c.sessionToken = token
	c.mu.Unlock()
}

func (c *Client) endpoint(base string) (string, error) {
	switch base {
	case aping.BaseSports:
		return c.endpoints.Betting, nil
	case aping.BaseAccount:
		return c.endpoints.Account, nil
	default:
		return "", fmt.Errorf("%w: unknown api base %q", aping.ErrInvalidArgument, base)
	}
}

// call performs one JSON-RPC request and returns the raw `result`.
func (c *Client) call(ctx context.Context, base, method string, params map[string]any) (any, error) {
	url, err := c.endpoint(base)
	if err != nil {
		return nil, err
	}

	payload, err := aping.Marshal(aping.MakePayload(base, method, params))
	if err != nil {
		return nil, fmt.Errorf("could not encode %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderApplication, c.appKey)
	req.Header.Set(HeaderAuthentication, c.SessionToken())

	resp, err := c.do(req, method)
	if err != nil {
		return nil, err
	}

	if err := aping.CheckStatusCode(resp); err != nil {
		c.observe(method, metrics.StatusFail)
		return nil, err
	}

	result, err := aping.ResultOrError(resp)
	if err != nil {
		c.observe(method, metrics.StatusFail)
		return nil, err
	}

	c.observe(method, metrics.StatusOk)
	return result, nil
}

// do sends req and reads the whole body.
func (c *Client) do(req *http.Request, method string) (*entity.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			c.observe(method, metrics.StatusFail)
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	rawResp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, metrics.StatusFail)
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		rawResp.Body.Close()
		duration := time.Since(start).Seconds()
		c.metrics.SummaryHandlers.With(prometheus.Labels{metrics.Method: method}).Observe(duration)
	}()

	body, err := io.ReadAll(rawResp.Body)
	if err != nil {
		c.observe(method, metrics.StatusFail)
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	return &entity.Response{
		StatusCode: rawResp.StatusCode,
		Status:     rawResp.Status,
		Header:     rawResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) observe(method, status string) {
	c.metrics.Requests.With(prometheus.Labels{metrics.Method: method, metrics.Status: status}).Inc()
}
