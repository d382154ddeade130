package pipeline

import (
	"strings"

	"golang.org/x/text/cases"
)

// candidatePool accumulates candidate addresses in insertion order,
// deduplicating case-insensitively and keeping the first-seen casing.
// Anything not containing "@" is dropped on entry.
type candidatePool struct {
	caser cases.Caser
	seen  map[string]bool
	items []string
}

func newCandidatePool() *candidatePool {
	return &candidatePool{
		caser: cases.Fold(),
		seen:  make(map[string]bool),
	}
}

// Add appends new candidates, skipping blanks, non-addresses, and
// case-insensitive duplicates.
func (p *candidatePool) Add(addresses ...string) {
	for _, addr := range addresses {
		addr = strings.TrimSpace(addr)
		if addr == "" || !strings.Contains(addr, "@") {
			continue
		}
		key := p.caser.String(addr)
		if p.seen[key] {
			continue
		}
		p.seen[key] = true
		p.items = append(p.items, addr)
	}
}

// List returns the pooled candidates in insertion order.
func (p *candidatePool) List() []string {
	out := make([]string, len(p.items))
	copy(out, p.items)
	return out
}

// Len reports the number of unique candidates pooled so far.
func (p *candidatePool) Len() int {
	return len(p.items)
}
