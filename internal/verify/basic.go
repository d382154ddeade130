package verify

import (
	"context"
	"strings"

	"github.com/sells-group/mailscout/internal/model"
)

// Basic is the degenerate verifier for operation modes that skip real
// deliverability checking: a syntactic format check, no network call.
type Basic struct{}

// Verify marks an address valid when it contains "@" and is longer than
// three characters, invalid otherwise.
func (Basic) Verify(_ context.Context, address string) model.ValidationOutcome {
	out := model.ValidationOutcome{Address: address}
	if strings.Contains(address, "@") && len(address) > 3 {
		out.Status = model.StatusValid
	} else {
		out.Status = model.StatusInvalid
		out.Detail = "failed basic format check"
	}
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		out.Domain = strings.ToLower(address[at+1:])
	}
	return out
}
