package extractor

import (
	"strings"

	"github.com/sells-group/mailscout/pkg/anthropic"
)

// extractText concatenates all text content blocks from a message response.
func extractText(resp *anthropic.MessageResponse) string {
	if resp == nil {
		return ""
	}
	var parts []string
	for _, block := range resp.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}

// secondLevelTLDs lists multi-label public suffixes we collapse against.
// Not exhaustive; covers the registries seen in practice.
var secondLevelTLDs = map[string]bool{
	"co.uk": true, "org.uk": true, "ac.uk": true, "gov.uk": true,
	"com.au": true, "net.au": true, "org.au": true,
	"co.nz": true, "co.jp": true, "co.in": true, "co.za": true,
	"com.br": true, "com.mx": true, "com.sg": true,
}

// normalizeDomain lowercases a domain-ish string, strips scheme, path, port
// and leading www., and collapses subdomains to the registrable domain.
// Returns "" if nothing domain-like remains.
func normalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	if d == "" {
		return ""
	}

	// Strip scheme and path.
	if idx := strings.Index(d, "://"); idx >= 0 {
		d = d[idx+3:]
	}
	if idx := strings.IndexAny(d, "/?#"); idx >= 0 {
		d = d[:idx]
	}
	if idx := strings.Index(d, ":"); idx >= 0 {
		d = d[:idx]
	}
	d = strings.TrimPrefix(d, "www.")
	d = strings.Trim(d, ".")

	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return ""
	}

	// Collapse to registrable domain: last two labels, or last three when the
	// final two form a known second-level TLD.
	if len(labels) > 2 {
		lastTwo := strings.Join(labels[len(labels)-2:], ".")
		if secondLevelTLDs[lastTwo] {
			return strings.Join(labels[len(labels)-3:], ".")
		}
		return lastTwo
	}
	return d
}
