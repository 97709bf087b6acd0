package booking

import "fmt"

// Policy violation reason codes.
const (
	ReasonLeadTime  = "lead_time"
	ReasonMinNights = "min_nights"
	ReasonMaxNights = "max_nights"
)

// PolicyViolationError reports a candidate range that fails the listing's
// booking policy (lead time or stay-length bounds).
type PolicyViolationError struct {
	Code    string
	Message string
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newPolicyViolation(code, msg string) error {
	return &PolicyViolationError{Code: code, Message: msg}
}
