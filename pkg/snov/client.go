// Package snov is a thin client for the Snov.io contact-discovery API.
package snov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// Default base URL for the Snov.io API.
const defaultBaseURL = "https://api.snov.io"

// Client defines the Snov.io API operations used by the contact finder.
type Client interface {
	DomainSearch(ctx context.Context, req DomainSearchRequest) (*DomainSearchResponse, error)
}

// DomainSearchRequest is the body for POST /v2/domain-emails-with-info.
type DomainSearchRequest struct {
	Domain string `json:"domain"`
	Limit  int    `json:"limit,omitempty"`
}

// DomainSearchResponse is the response from the domain search endpoint.
type DomainSearchResponse struct {
	Success bool            `json:"success"`
	Domain  string          `json:"domain"`
	Webmail bool            `json:"webmail"`
	Emails  []ContactRecord `json:"emails"`
}

// ContactRecord is one known contact for a domain. Email may be blank.
type ContactRecord struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Position  string `json:"position,omitempty"`
}

// APIError is returned when Snov.io responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("snov: HTTP %d: %s", e.StatusCode, e.Body)
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

// NewClient creates a new Snov.io client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
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

func (c *httpClient) DomainSearch(ctx context.Context, dsReq DomainSearchRequest) (*DomainSearchResponse, error) {
	buf, err := json.Marshal(dsReq)
	if err != nil {
		return nil, eris.Wrap(err, "snov: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/domain-emails-with-info", bytes.NewReader(buf))
	if err != nil {
		return nil, eris.Wrap(err, "snov: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "snov: execute request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "snov: read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	var out DomainSearchResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, eris.Wrap(err, "snov: decode response")
	}

	return &out, nil
}
