package entities

// AttemptOutcome is the result of a single reconciliation strategy run.

type AttemptOutcome string

const (
	AttemptFound    AttemptOutcome = "FOUND"
	AttemptNotFound AttemptOutcome = "NOT_FOUND"
	AttemptError    AttemptOutcome = "ERROR"
)

// ReconciliationAttempt records one strategy execution for diagnostics.
// Every strategy in the chain records exactly one attempt per resolver run,
// including strategies that were not applicable to the input.

type ReconciliationAttempt struct {
	Strategy string         `json:"strategy"`
	Input    string         `json:"input"`
	Outcome  AttemptOutcome `json:"outcome"`
	Detail   string         `json:"detail,omitempty"`
}

// ReconciliationOutcome is the terminal state of a resolver run.
//
// PartialSuccess is a business state, not a software error: the gateway
// reported a successful payment but no booking record could be associated
// (typically asynchronous booking creation lagging the browser redirect).

type ReconciliationOutcome string

const (
	ReconciliationFound          ReconciliationOutcome = "FOUND"
	ReconciliationNotFound       ReconciliationOutcome = "NOT_FOUND"
	ReconciliationPartialSuccess ReconciliationOutcome = "PARTIAL_SUCCESS"
)

// ReconciliationResult carries the resolved booking (when found), the winning
// strategy name and the full attempt log.

type ReconciliationResult struct {
	Outcome     ReconciliationOutcome   `json:"outcome"`
	Booking     Booking                 `json:"booking,omitempty"`
	ResolvedVia string                  `json:"resolved_via,omitempty"`
	Attempts    []ReconciliationAttempt `json:"attempts"`
}
