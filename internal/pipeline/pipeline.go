// Package pipeline orchestrates the four discovery operations: candidate
// generation, optional domain fan-out, pooling, validation, and narrative
// assembly. All four operations share one run template parameterized by
// OpConfig; the caller always gets a well-formed result, never an error.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/mailscout/internal/config"
	"github.com/sells-group/mailscout/internal/contacts"
	"github.com/sells-group/mailscout/internal/extractor"
	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/internal/scrape"
	"github.com/sells-group/mailscout/internal/verify"
)

// Extractor is the generative collaborator. Satisfied by *extractor.Extractor.
type Extractor interface {
	IdentifyCompanies(ctx context.Context, criteria string) ([]model.CompanyLead, error)
	ExtractDomains(ctx context.Context, text string) ([]string, error)
	ExtractAddresses(ctx context.Context, text string) (*extractor.RawExtraction, error)
	GuessFromNames(ctx context.Context, text string) (*extractor.NameGuesses, error)
}

// Pipeline wires the collaborators together. Construct with New.
type Pipeline struct {
	ex       Extractor
	finder   contacts.Finder
	verifier verify.Verifier
	scraper  scrape.Scraper

	ops          map[string]OpConfig
	perDomainCap int
	chunkSize    int
}

// New builds a Pipeline from its collaborators. scraper may be nil, in which
// case domain fan-out goes through the contact finder. An operations file, if
// configured, overrides per-operation validation modes and caps.
func New(ex Extractor, finder contacts.Finder, verifier verify.Verifier, scraper scrape.Scraper, cfg config.PipelineConfig) (*Pipeline, error) {
	ops := defaultOps(cfg.ResultCap)
	if cfg.OperationsFile != "" {
		if err := loadOpOverrides(cfg.OperationsFile, ops); err != nil {
			return nil, err
		}
	}
	return &Pipeline{
		ex:           ex,
		finder:       finder,
		verifier:     verifier,
		scraper:      scraper,
		ops:          ops,
		perDomainCap: cfg.PerDomainCap,
		chunkSize:    cfg.ValidationChunkSize,
	}, nil
}

// FindByCriteria turns a free-text company search into validated addresses.
func (p *Pipeline) FindByCriteria(ctx context.Context, criteria string) *model.PipelineResult {
	if strings.TrimSpace(criteria) == "" {
		return emptyInputResult()
	}
	return p.run(ctx, OpFindByCriteria, func(ctx context.Context) ([]string, []string, stageEvent, error) {
		leads, err := p.ex.IdentifyCompanies(ctx, criteria)
		if err != nil {
			return nil, nil, nil, err
		}
		var direct, domains []string
		for _, lead := range leads {
			direct = append(direct, lead.SuggestedEmails...)
			domains = append(domains, lead.Domain)
		}
		return direct, domains, extractorEvent{op: OpFindByCriteria, companies: len(leads)}, nil
	})
}

// ExtractFromText pulls addresses out of arbitrary text and validates them.
func (p *Pipeline) ExtractFromText(ctx context.Context, text string) *model.PipelineResult {
	if strings.TrimSpace(text) == "" {
		return emptyInputResult()
	}
	return p.run(ctx, OpExtractFromText, func(ctx context.Context) ([]string, []string, stageEvent, error) {
		raw, err := p.ex.ExtractAddresses(ctx, text)
		if err != nil {
			return nil, nil, nil, err
		}
		return raw.Addresses, nil, extractorEvent{op: OpExtractFromText, addresses: len(raw.Addresses)}, nil
	})
}

// GenerateFromNames guesses addresses for person names mentioned in text.
// Guesses are returned unvalidated.
func (p *Pipeline) GenerateFromNames(ctx context.Context, text string) *model.PipelineResult {
	if strings.TrimSpace(text) == "" {
		return emptyInputResult()
	}
	return p.run(ctx, OpGenerateFromNames, func(ctx context.Context) ([]string, []string, stageEvent, error) {
		guesses, err := p.ex.GuessFromNames(ctx, text)
		if err != nil {
			return nil, nil, nil, err
		}
		return guesses.Addresses, nil, extractorEvent{op: OpGenerateFromNames, addresses: len(guesses.Addresses)}, nil
	})
}

// GenerateFromDomains recognizes domains in text and fans out contact
// discovery across them.
func (p *Pipeline) GenerateFromDomains(ctx context.Context, text string) *model.PipelineResult {
	if strings.TrimSpace(text) == "" {
		return emptyInputResult()
	}
	return p.run(ctx, OpGenerateFromDomains, func(ctx context.Context) ([]string, []string, stageEvent, error) {
		domains, err := p.ex.ExtractDomains(ctx, text)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, domains, extractorEvent{op: OpGenerateFromDomains, domains: len(domains)}, nil
	})
}

// run is the shared template. The source closure produces directly usable
// candidates plus domains to fan out over; everything after that is driven
// by the operation's OpConfig. A panic anywhere inside becomes the critical
// error result rather than propagating to the caller.
func (p *Pipeline) run(ctx context.Context, opName string, source func(context.Context) ([]string, []string, stageEvent, error)) (result *model.PipelineResult) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID), zap.String("operation", opName))

	defer func() {
		if r := recover(); r != nil {
			log.Error("run panicked", zap.Any("panic", r))
			result = &model.PipelineResult{
				Addresses: []string{},
				Narrative: failureEvent{context: fmt.Sprint(r)}.sentence(),
			}
		}
	}()

	op := p.ops[opName]
	log.Info("run started",
		zap.String("validation", string(op.Validation)),
		zap.Int("cap", op.Cap))

	direct, domains, ev, err := source(ctx)
	if err != nil {
		log.Warn("candidate generation failed", zap.Error(err))
		return &model.PipelineResult{
			Addresses: []string{},
			Narrative: renderNarrative([]stageEvent{extractorEvent{op: opName, failed: true, detail: err.Error()}}),
		}
	}
	events := []stageEvent{ev}

	pool := newCandidatePool()
	pool.Add(direct...)

	if op.UsesDomainFanOut && len(domains) > 0 {
		before := pool.Len()
		found, stats := p.lookupDomains(ctx, domains)
		pool.Add(found...)
		events = append(events, fanOutEvent{
			domains:       stats.Domains,
			errored:       stats.Errored,
			found:         pool.Len() - before,
			configProblem: stats.ConfigProblem,
		})
	}

	events = append(events, pooledEvent{candidates: pool.Len()})
	candidates := pool.List()

	addresses := []string{}
	if len(candidates) > 0 {
		if op.Validation == ValidationNone {
			addresses = candidates
		} else {
			valid, stats := p.validateCandidates(ctx, p.verifierFor(op.Validation), candidates)
			addresses = append(addresses, valid...)
			events = append(events, validationEvent{mode: op.Validation, stats: stats})
		}
	}

	if op.Cap > 0 && len(addresses) > op.Cap {
		events = append(events, truncationEvent{kept: len(addresses), cap: op.Cap})
		addresses = addresses[:op.Cap]
	}

	log.Info("run complete", zap.Int("addresses", len(addresses)))
	return &model.PipelineResult{
		Addresses: addresses,
		Narrative: renderNarrative(events),
	}
}

// verifierFor swaps the capability, not the control flow. Basic mode checks
// format only; full mode uses the injected live verifier.
func (p *Pipeline) verifierFor(mode ValidationMode) verify.Verifier {
	if mode == ValidationBasic {
		return verify.Basic{}
	}
	return p.verifier
}

func emptyInputResult() *model.PipelineResult {
	return &model.PipelineResult{
		Addresses: []string{},
		Narrative: "The input was empty; no lookup was performed.",
	}
}
