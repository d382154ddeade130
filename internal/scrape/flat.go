package scrape

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
)

// FlatScraper adapts the vendor shape that returns one merged list:
// {"emails": ["a@x.com", ...]}.
type FlatScraper struct {
	url  string
	http *http.Client
}

func (s *FlatScraper) Scrape(ctx context.Context, websites []string) ([]string, error) {
	data, err := doPost(ctx, s.http, s.url, websites)
	if err != nil {
		return nil, err
	}

	var out struct {
		Emails []string `json:"emails"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, eris.Wrap(err, "scrape: decode flat response")
	}
	return out.Emails, nil
}
