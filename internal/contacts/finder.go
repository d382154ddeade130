// Package contacts finds known email addresses for a company domain through
// the external contact-discovery vendor.
package contacts

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mailscout/internal/resilience"
	"github.com/sells-group/mailscout/pkg/snov"
)

// ErrNotConfigured is returned when the discovery vendor credential is
// absent; no network call is made in that case.
var ErrNotConfigured = eris.New("contacts: discovery api key not configured")

// Finder looks up known contact addresses for one company domain.
type Finder interface {
	FindContacts(ctx context.Context, domain string, maxResults int) ([]string, error)
}

// SnovFinder implements Finder against the Snov.io domain search.
type SnovFinder struct {
	client snov.Client
	apiKey string
	retry  resilience.Config
}

// NewSnovFinder creates a finder. The credential is injected at construction.
func NewSnovFinder(client snov.Client, apiKey string) *SnovFinder {
	retry := resilience.DefaultConfig()
	retry.ShouldRetry = retryableVendorError
	return &SnovFinder{client: client, apiKey: apiKey, retry: retry}
}

// retryableVendorError retries server-side faults and transport hiccups,
// never auth or quota rejections.
func retryableVendorError(err error) bool {
	var apiErr *snov.APIError
	if eris.As(err, &apiErr) {
		return resilience.IsTransientHTTPStatus(apiErr.StatusCode)
	}
	return resilience.IsTransient(err)
}

// FindContacts returns up to maxResults addresses known for the domain.
// Blank records are dropped. Vendor failures, including response shape
// mismatches, come back as wrapped errors, never panics.
func (f *SnovFinder) FindContacts(ctx context.Context, domain string, maxResults int) ([]string, error) {
	if f.apiKey == "" {
		return nil, ErrNotConfigured
	}

	resp, err := resilience.DoVal(ctx, f.retry, func(ctx context.Context) (*snov.DomainSearchResponse, error) {
		return f.client.DomainSearch(ctx, snov.DomainSearchRequest{
			Domain: domain,
			Limit:  maxResults,
		})
	})
	if err != nil {
		return nil, eris.Wrapf(err, "contacts: domain search %s", domain)
	}

	var emails []string
	for _, record := range resp.Emails {
		email := strings.TrimSpace(record.Email)
		if email == "" {
			continue
		}
		emails = append(emails, email)
		if maxResults > 0 && len(emails) >= maxResults {
			break
		}
	}
	return emails, nil
}
