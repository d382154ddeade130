package main

import (
	"go.uber.org/zap"

	"github.com/sells-group/mailscout/internal/contacts"
	"github.com/sells-group/mailscout/internal/extractor"
	"github.com/sells-group/mailscout/internal/pipeline"
	"github.com/sells-group/mailscout/internal/scrape"
	"github.com/sells-group/mailscout/internal/verify"
	anthropicpkg "github.com/sells-group/mailscout/pkg/anthropic"
	"github.com/sells-group/mailscout/pkg/snov"
	"github.com/sells-group/mailscout/pkg/verimail"
)

// initPipeline builds all API clients and wires the pipeline. Missing
// credentials are not fatal here: each collaborator degrades into a
// configuration-problem outcome that the run narrative surfaces.
func initPipeline() (*pipeline.Pipeline, error) {
	anthropicClient := anthropicpkg.NewClient(cfg.Anthropic.Key)
	ex := extractor.New(anthropicClient, cfg.Anthropic)

	var verimailOpts []verimail.Option
	if cfg.Verimail.BaseURL != "" {
		verimailOpts = append(verimailOpts, verimail.WithBaseURL(cfg.Verimail.BaseURL))
	}
	verifier := verify.NewLive(
		verimail.NewClient(cfg.Verimail.Key, verimailOpts...),
		cfg.Verimail.Key,
		cfg.Verimail.RatePerSec,
		cfg.Verimail.Burst,
	)

	var snovOpts []snov.Option
	if cfg.Snov.BaseURL != "" {
		snovOpts = append(snovOpts, snov.WithBaseURL(cfg.Snov.BaseURL))
	}
	finder := contacts.NewSnovFinder(snov.NewClient(cfg.Snov.Key, snovOpts...), cfg.Snov.Key)

	scraper, err := scrape.New(cfg.Scraper)
	if err != nil {
		return nil, err
	}
	if scraper != nil {
		zap.L().Info("scraping service enabled", zap.String("shape", cfg.Scraper.Shape))
	}

	return pipeline.New(ex, finder, verifier, scraper, cfg.Pipeline)
}
