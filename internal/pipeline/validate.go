package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/internal/verify"
)

type validationStats struct {
	Checked          int
	Valid            int
	Rejected         int
	Inconclusive     int
	ConfigErrors     int
	ServiceErrors    int
	InvocationErrors int
}

// validateCandidates checks every candidate against the verifier in fixed
// size chunks. Addresses within a chunk run concurrently; chunks run one
// after another so the downstream service sees a bounded burst. Order of
// the surviving addresses matches the input order.
func (p *Pipeline) validateCandidates(ctx context.Context, v verify.Verifier, candidates []string) ([]string, validationStats) {
	stats := validationStats{Checked: len(candidates)}
	outcomes := make([]model.ValidationOutcome, len(candidates))

	size := p.chunkSize
	if size <= 0 {
		size = 10
	}

	for start := 0; start < len(candidates); start += size {
		end := start + size
		if end > len(candidates) {
			end = len(candidates)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				outcomes[i] = safeVerify(ctx, v, candidates[i])
			}()
		}
		wg.Wait()
	}

	var valid []string
	for _, out := range outcomes {
		switch out.Status {
		case model.StatusValid:
			stats.Valid++
			valid = append(valid, out.Address)
		case model.StatusInvalid, model.StatusDisposable:
			stats.Rejected++
		case model.StatusErrorConfig:
			stats.ConfigErrors++
		case model.StatusErrorService:
			stats.ServiceErrors++
		case model.StatusErrorInvocation:
			stats.InvocationErrors++
		default:
			stats.Inconclusive++
		}
	}
	return valid, stats
}

// safeVerify guards against a panicking verifier implementation. One bad
// address must not take down the batch.
func safeVerify(ctx context.Context, v verify.Verifier, address string) (out model.ValidationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("verifier panicked", zap.String("address", address), zap.Any("panic", r))
			out = model.ValidationOutcome{
				Address: address,
				Status:  model.StatusErrorInvocation,
				Detail:  "verifier panicked",
			}
		}
	}()
	return v.Verify(ctx, address)
}
