package bookingflow

import "fmt"

// FlowError distinguishes remote failures in the payment step so handlers can
// tell a blocked page load from a retryable submission failure.
type FlowError struct {
	Code    string
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

const (
	// CodeResolution marks a failed cart-to-services resolution. Fatal for the
	// current page load; no partial results, no per-item retry.
	CodeResolution = "resolutionError"
	// CodeSubmission marks a failed transaction POST. The session state stays
	// intact so the user can retry.
	CodeSubmission = "submissionError"
)

func NewResolutionError(err error) error {
	return &FlowError{
		Code:    CodeResolution,
		Message: "failed to fetch service details",
		Err:     err,
	}
}

func NewSubmissionError(err error) error {
	return &FlowError{
		Code:    CodeSubmission,
		Message: "failed to submit booking transaction",
		Err:     err,
	}
}
