// Package verify checks candidate addresses for deliverability. The live
// verifier calls the external vendor; the basic verifier applies a syntactic
// check only. The orchestrator swaps between them without changing its own
// control flow.
package verify

import (
	"context"

	"github.com/sells-group/mailscout/internal/model"
)

// Verifier checks one candidate address. Implementations never return an
// error: every failure mode is encoded in the outcome status so callers can
// branch without exception handling.
type Verifier interface {
	Verify(ctx context.Context, address string) model.ValidationOutcome
}
