// Package extractor invokes the language model against fixed prompt/schema
// pairs to produce companies, domains, raw addresses, and address guesses
// from free text. Model output is treated as unreliable: every call site
// tolerates missing fields, and a response that fails to parse surfaces as
// an error the orchestrator folds into the run narrative.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/mailscout/internal/config"
	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/pkg/anthropic"
)

// Extractor runs the four generative operations against one model.
type Extractor struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// New creates an Extractor from an Anthropic client and config.
func New(client anthropic.Client, cfg config.AnthropicConfig) *Extractor {
	return &Extractor{
		client:    client,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}
}

// RawExtraction is the output of the lexical address extraction operation.
type RawExtraction struct {
	Addresses []string
	CharCount int
	Summary   string
}

// NameGuesses is the output of the name-to-address guessing operation.
type NameGuesses struct {
	Addresses []string
	Summary   string
}

// IdentifyCompanies pulls companies and their domains from a criteria string.
// Leads without a usable domain are dropped; domains are normalized to the
// registrable domain.
func (e *Extractor) IdentifyCompanies(ctx context.Context, criteria string) ([]model.CompanyLead, error) {
	var out struct {
		Companies []struct {
			Name            string   `json:"name"`
			Domain          string   `json:"domain"`
			SuggestedEmails []string `json:"suggested_emails"`
		} `json:"companies"`
		Reasoning string `json:"reasoning"`
	}
	if err := e.invoke(ctx, "identify_companies", companiesSystem, fmt.Sprintf(companiesPrompt, criteria), &out); err != nil {
		return nil, err
	}

	var leads []model.CompanyLead
	for _, c := range out.Companies {
		domain := normalizeDomain(c.Domain)
		if domain == "" {
			continue
		}
		lead := model.CompanyLead{
			Name:   strings.TrimSpace(c.Name),
			Domain: domain,
		}
		for _, addr := range c.SuggestedEmails {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				lead.SuggestedEmails = append(lead.SuggestedEmails, addr)
			}
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// ExtractDomains pulls unique registrable domains out of a block of free text.
func (e *Extractor) ExtractDomains(ctx context.Context, text string) ([]string, error) {
	var out struct {
		Domains []string `json:"domains"`
	}
	if err := e.invoke(ctx, "extract_domains", domainsSystem, fmt.Sprintf(domainsPrompt, text), &out); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var domains []string
	for _, d := range out.Domains {
		normalized := normalizeDomain(d)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		domains = append(domains, normalized)
	}
	return domains, nil
}

// ExtractAddresses pulls email-like substrings from arbitrary text. Purely
// lexical; no filtering or validation is performed by the model.
func (e *Extractor) ExtractAddresses(ctx context.Context, text string) (*RawExtraction, error) {
	var out struct {
		Addresses []string `json:"addresses"`
		CharCount int      `json:"char_count"`
		Summary   string   `json:"summary"`
	}
	if err := e.invoke(ctx, "extract_addresses", addressesSystem, fmt.Sprintf(addressesPrompt, text), &out); err != nil {
		return nil, err
	}
	return &RawExtraction{
		Addresses: dropBlank(out.Addresses),
		CharCount: out.CharCount,
		Summary:   out.Summary,
	}, nil
}

// GuessFromNames derives plausible addresses for person names found in text.
func (e *Extractor) GuessFromNames(ctx context.Context, text string) (*NameGuesses, error) {
	var out struct {
		Addresses []string `json:"addresses"`
		Summary   string   `json:"summary"`
	}
	if err := e.invoke(ctx, "guess_from_names", namesSystem, fmt.Sprintf(namesPrompt, text), &out); err != nil {
		return nil, err
	}
	return &NameGuesses{
		Addresses: dropBlank(out.Addresses),
		Summary:   out.Summary,
	}, nil
}

// invoke sends one message and decodes the JSON object response into out.
func (e *Extractor) invoke(ctx context.Context, operation, system, prompt string, out any) error {
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     e.model,
		MaxTokens: e.maxTokens,
		System:    system,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return eris.Wrapf(err, "extractor: %s", operation)
	}
	resp.Usage.LogCost(e.model, operation)

	cleaned := cleanJSON(extractText(resp))
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		zap.L().Warn("extractor: response failed schema parse",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return eris.Wrapf(err, "extractor: %s: parse response", operation)
	}
	return nil
}

func dropBlank(values []string) []string {
	var kept []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
