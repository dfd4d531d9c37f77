// Package practicum talks to the Yandex Practicum homework-statuses API:
// incremental fetch by unix-timestamp cursor, response shape validation and
// status-to-message translation.
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hwbot/pkg/logx"
)

// Endpoint is the single API URL this bot ever talks to.
const Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const requestTimeout = 10 * time.Second

type Client struct {
	token    string
	endpoint string
	http     *http.Client
	log      logx.Logger
}

// Option tweaks a Client. Only tests need these.
type Option func(*Client)

// WithEndpoint overrides the API URL (httptest servers).
func WithEndpoint(u string) Option { return func(c *Client) { c.endpoint = u } }

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func NewClient(token string, log logx.Logger, opts ...Option) *Client {
	c := &Client{
		token:    token,
		endpoint: Endpoint,
		http:     &http.Client{Timeout: requestTimeout},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch issues one GET with the OAuth header and the from_date cursor and
// returns the decoded JSON body as a generic mapping. Shape validation is the
// caller's job (CheckResponse); Fetch only guarantees the endpoint answered
// 2xx with decodable JSON.
func (c *Client) Fetch(ctx context.Context, from int64) (map[string]any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &EndpointError{URL: c.endpoint, Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &EndpointError{URL: c.endpoint, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("homework statuses request failed", logx.Err(err), logx.Int64("from_date", from))
		return nil, &EndpointError{URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		c.log.Error("homework statuses endpoint returned error",
			logx.String("url", c.endpoint), logx.Int("status", resp.StatusCode))
		return nil, &EndpointError{URL: c.endpoint, StatusCode: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	// UseNumber so current_date survives as an exact integer.
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &MalformedError{Reason: "тело ответа не является JSON-объектом"}
	}

	c.log.Debug("homework statuses fetched", logx.Int64("from_date", from))
	return raw, nil
}
