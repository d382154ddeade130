package scrape

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
)

// PerSiteScraper adapts the vendor shape that returns one record per website:
// [{"website": "x.com", "emails": ["a@x.com"]}, ...]. Merged site order
// follows the response order.
type PerSiteScraper struct {
	url  string
	http *http.Client
}

type perSiteRecord struct {
	Website string   `json:"website"`
	Emails  []string `json:"emails"`
}

func (s *PerSiteScraper) Scrape(ctx context.Context, websites []string) ([]string, error) {
	data, err := doPost(ctx, s.http, s.url, websites)
	if err != nil {
		return nil, err
	}

	var records []perSiteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Some deployments wrap the list in a results envelope.
		var wrapper struct {
			Results []perSiteRecord `json:"results"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil {
			return nil, eris.Wrap(err, "scrape: decode per-site response")
		}
		records = wrapper.Results
	}

	var emails []string
	for _, r := range records {
		emails = append(emails, r.Emails...)
	}
	return emails, nil
}
