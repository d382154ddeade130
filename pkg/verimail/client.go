// Package verimail is a thin client for the Verimail deliverability API.
package verimail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

// Default base URL for the Verimail v3 API.
const defaultBaseURL = "https://api.verimail.io/v3"

// Client defines the Verimail API operations.
type Client interface {
	Verify(ctx context.Context, email string) (*VerifyResponse, error)
}

// VerifyResponse is the response from GET /verify. Status "success" gates
// whether Result is meaningful; any other status denotes a vendor-level
// failure carried in Message.
type VerifyResponse struct {
	Status string   `json:"status"`
	Result string   `json:"result"`
	Flags  []string `json:"flags,omitempty"`

	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// APIError is returned when Verimail responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("verimail: HTTP %d: %s", e.StatusCode, e.Body)
}

// Option configures the httpClient.
type Option func(*httpClient)

// WithBaseURL overrides the default base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// httpClient implements Client using net/http.
type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new Verimail client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Verify(ctx context.Context, email string) (*VerifyResponse, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/verify?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "verimail: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "verimail: execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "verimail: read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	var out VerifyResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, eris.Wrap(err, "verimail: decode response")
	}

	return &out, nil
}
