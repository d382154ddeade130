package model

// Status classifies the outcome of verifying one candidate address. Failure
// modes are statuses, not errors, so callers can branch without exception
// handling.
type Status string

const (
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
	StatusCatchall   Status = "catchall"
	StatusDisposable Status = "disposable"
	StatusUnknown    Status = "unknown"

	// StatusErrorConfig means the vendor credential is missing or malformed.
	// That is a deployment problem, not a data problem.
	StatusErrorConfig Status = "error_config"

	// StatusErrorService means the vendor was reachable but rejected the
	// request (auth failure, rate limit).
	StatusErrorService Status = "error_service"

	// StatusErrorInvocation means the vendor could not be reached at the
	// network layer.
	StatusErrorInvocation Status = "error_invocation"
)

// IsError reports whether the status denotes a verification failure rather
// than a substantive per-address result.
func (s Status) IsError() bool {
	switch s {
	case StatusErrorConfig, StatusErrorService, StatusErrorInvocation:
		return true
	default:
		return false
	}
}

// ValidationOutcome is the result of verifying one candidate address.
// There is exactly one outcome per unique candidate per pipeline run.
type ValidationOutcome struct {
	Address string `json:"address"`
	Status  Status `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Domain  string `json:"domain,omitempty"`
}
