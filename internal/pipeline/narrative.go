package pipeline

import (
	"fmt"
	"strings"
)

// Stage events are the structured record of what a run did. They are
// rendered to prose only at the boundary, so aggregation logic is tested
// against data, not string matching.

type stageEvent interface {
	sentence() string
}

// extractorEvent records the generative step that seeds the run.
type extractorEvent struct {
	op        string
	companies int
	domains   int
	addresses int
	failed    bool
	detail    string
}

func (e extractorEvent) sentence() string {
	if e.failed {
		if e.detail != "" {
			return fmt.Sprintf("The language model step failed (%s); no candidates were produced.", e.detail)
		}
		return "The language model step failed; no candidates were produced."
	}

	switch e.op {
	case OpFindByCriteria:
		return fmt.Sprintf("Identified %d %s matching the search criteria.", e.companies, plural(e.companies, "company", "companies"))
	case OpExtractFromText:
		return fmt.Sprintf("Found %d email-like %s in the supplied text.", e.addresses, plural(e.addresses, "string", "strings"))
	case OpGenerateFromNames:
		return fmt.Sprintf("Generated %d address %s from the supplied names.", e.addresses, plural(e.addresses, "guess", "guesses"))
	case OpGenerateFromDomains:
		return fmt.Sprintf("Recognized %d %s in the supplied text.", e.domains, plural(e.domains, "domain", "domains"))
	default:
		return fmt.Sprintf("Produced %d candidates.", e.addresses)
	}
}

// fanOutEvent records the domain lookup stage.
type fanOutEvent struct {
	domains       int
	errored       int
	found         int
	configProblem bool
}

func (e fanOutEvent) sentence() string {
	s := fmt.Sprintf("Contact discovery across %d %s produced %d %s.",
		e.domains, plural(e.domains, "domain", "domains"),
		e.found, plural(e.found, "address", "addresses"))
	if e.errored > 0 {
		s += fmt.Sprintf(" %d domain %s failed.", e.errored, plural(e.errored, "lookup", "lookups"))
	}
	if e.configProblem {
		s += " The discovery service credential is missing or invalid; configure it to enable domain lookups."
	}
	return s
}

// pooledEvent records the size of the deduplicated candidate set.
type pooledEvent struct {
	candidates int
}

func (e pooledEvent) sentence() string {
	return fmt.Sprintf("Pooled %d unique candidate %s.", e.candidates, plural(e.candidates, "address", "addresses"))
}

// validationEvent records the deliverability check stage.
type validationEvent struct {
	mode  ValidationMode
	stats validationStats
}

func (e validationEvent) sentence() string {
	s := fmt.Sprintf("Validated %d %s: %d deliverable, %d rejected, %d inconclusive.",
		e.stats.Checked, plural(e.stats.Checked, "candidate", "candidates"),
		e.stats.Valid, e.stats.Rejected, e.stats.Inconclusive)

	if e.stats.ConfigErrors > 0 && e.stats.ConfigErrors == e.stats.Checked {
		return s + " Every check failed because the verification credential is not configured; this is a deployment problem, not a lack of matches."
	}

	var problems []string
	if e.stats.ConfigErrors > 0 {
		problems = append(problems, fmt.Sprintf("%d configuration %s", e.stats.ConfigErrors, plural(e.stats.ConfigErrors, "error", "errors")))
	}
	if e.stats.ServiceErrors > 0 {
		problems = append(problems, fmt.Sprintf("%d vendor %s", e.stats.ServiceErrors, plural(e.stats.ServiceErrors, "rejection", "rejections")))
	}
	if e.stats.InvocationErrors > 0 {
		problems = append(problems, fmt.Sprintf("%d network %s", e.stats.InvocationErrors, plural(e.stats.InvocationErrors, "failure", "failures")))
	}
	if len(problems) > 0 {
		s += fmt.Sprintf(" Checks degraded by %s.", strings.Join(problems, ", "))
	}
	return s
}

// truncationEvent records a cap being applied.
type truncationEvent struct {
	kept int
	cap  int
}

func (e truncationEvent) sentence() string {
	return fmt.Sprintf("Results were truncated to the first %d of %d addresses.", e.cap, e.kept)
}

// failureEvent records the top-level catch-all firing.
type failureEvent struct {
	context string
}

func (e failureEvent) sentence() string {
	return fmt.Sprintf("A critical error interrupted the run: %s. No results were returned.", e.context)
}

// renderNarrative assembles the stage events into one prose string. Always
// non-empty.
func renderNarrative(events []stageEvent) string {
	if len(events) == 0 {
		return "Nothing to report."
	}
	parts := make([]string, 0, len(events))
	for _, e := range events {
		parts = append(parts, e.sentence())
	}
	return strings.Join(parts, " ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
