package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/mailscout/internal/contacts"
	"github.com/sells-group/mailscout/internal/scrape"
)

type fanOutStats struct {
	Domains       int
	Errored       int
	ConfigProblem bool
}

// lookupDomains runs contact discovery for every domain concurrently and
// merges the per-domain results back in input order. Individual lookup
// failures are tallied, never propagated; a run with some failed domains
// still returns whatever the rest found.
func (p *Pipeline) lookupDomains(ctx context.Context, domains []string) ([]string, fanOutStats) {
	stats := fanOutStats{Domains: len(domains)}
	if len(domains) == 0 {
		return nil, stats
	}

	if p.scraper != nil {
		return p.scrapeDomains(ctx, domains, &stats), stats
	}

	results := make([][]string, len(domains))
	errs := make([]error, len(domains))

	g, gctx := errgroup.WithContext(ctx)
	for i, domain := range domains {
		i, domain := i, domain
		g.Go(func() error {
			found, err := p.finder.FindContacts(gctx, domain, p.perDomainCap)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var merged []string
	for i, found := range results {
		if errs[i] != nil {
			stats.Errored++
			if eris.Is(errs[i], contacts.ErrNotConfigured) {
				stats.ConfigProblem = true
			} else {
				zap.L().Warn("domain lookup failed",
					zap.String("domain", domains[i]),
					zap.Error(errs[i]))
			}
			continue
		}
		merged = append(merged, found...)
	}
	return merged, stats
}

// scrapeDomains sends the full domain list to the scraping service in a
// single call. The service fans out internally, so a failure here counts
// every domain as errored.
func (p *Pipeline) scrapeDomains(ctx context.Context, domains []string, stats *fanOutStats) []string {
	found, err := p.scraper.Scrape(ctx, domains)
	if err != nil {
		stats.Errored = len(domains)
		var apiErr *scrape.APIError
		if eris.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			stats.ConfigProblem = true
		}
		zap.L().Warn("scrape request failed", zap.Int("domains", len(domains)), zap.Error(err))
		return nil
	}
	return found
}
