package verify

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/mailscout/internal/model"
	"github.com/sells-group/mailscout/internal/resilience"
	"github.com/sells-group/mailscout/pkg/verimail"
)

// Live verifies addresses against the deliverability vendor. Calls are rate
// limited for vendor politeness in addition to the orchestrator's chunked
// backpressure.
type Live struct {
	client  verimail.Client
	apiKey  string
	limiter *rate.Limiter
	retry   resilience.Config
}

// NewLive creates a live verifier. The credential is injected here, not read
// from ambient process state, so the missing-credential path is testable.
func NewLive(client verimail.Client, apiKey string, perSec float64, burst int) *Live {
	if perSec <= 0 {
		perSec = 10
	}
	if burst <= 0 {
		burst = 1
	}
	retry := resilience.DefaultConfig()
	retry.ShouldRetry = retryableVendorError
	return &Live{
		client:  client,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(perSec), burst),
		retry:   retry,
	}
}

// retryableVendorError retries server-side faults and transport hiccups.
// Auth and quota rejections go straight to classification.
func retryableVendorError(err error) bool {
	var apiErr *verimail.APIError
	if eris.As(err, &apiErr) {
		return resilience.IsTransientHTTPStatus(apiErr.StatusCode)
	}
	return resilience.IsTransient(err)
}

// Verify checks one address with the vendor. All failure modes map into the
// outcome status taxonomy; no network call is made when the credential is
// absent.
func (v *Live) Verify(ctx context.Context, address string) model.ValidationOutcome {
	out := model.ValidationOutcome{Address: address, Domain: addressDomain(address)}

	if v.apiKey == "" {
		out.Status = model.StatusErrorConfig
		out.Detail = "verification api key not configured"
		return out
	}

	if err := v.limiter.Wait(ctx); err != nil {
		out.Status = model.StatusErrorInvocation
		out.Detail = err.Error()
		return out
	}

	resp, err := resilience.DoVal(ctx, v.retry, func(ctx context.Context) (*verimail.VerifyResponse, error) {
		return v.client.Verify(ctx, address)
	})
	if err != nil {
		var apiErr *verimail.APIError
		if eris.As(err, &apiErr) && isVendorRejection(apiErr.StatusCode) {
			out.Status = model.StatusErrorService
			out.Detail = apiErr.Body
			return out
		}
		out.Status = model.StatusErrorInvocation
		out.Detail = err.Error()
		return out
	}

	if resp.Status != "success" {
		out.Status = model.StatusErrorService
		out.Detail = resp.Message
		return out
	}

	out.Status = mapResult(resp.Result)
	if resp.Domain != "" {
		out.Domain = resp.Domain
	}
	return out
}

// isVendorRejection reports whether the HTTP status denotes an auth or
// rate-limit rejection rather than a transport fault.
func isVendorRejection(status int) bool {
	switch status {
	case 401, 403, 429:
		return true
	default:
		return false
	}
}

// mapResult maps the vendor's per-address result into our taxonomy,
// defaulting to unknown when the value is absent or unrecognized.
func mapResult(result string) model.Status {
	switch strings.ToLower(result) {
	case "deliverable":
		return model.StatusValid
	case "undeliverable", "invalid":
		return model.StatusInvalid
	case "catch_all", "catchall":
		return model.StatusCatchall
	case "disposable":
		return model.StatusDisposable
	default:
		return model.StatusUnknown
	}
}

func addressDomain(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		return strings.ToLower(address[at+1:])
	}
	return ""
}
