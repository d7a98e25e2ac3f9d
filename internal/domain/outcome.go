package domain

import "fmt"

// Outcome is the value-typed result of a tag mutation. Message carries the
// underlying tool's output on success or a human-readable failure
// description. Mutations never report failure by panicking or by error
// values that unwind past the use case boundary.
type Outcome struct {
	Success bool
	Message string
}

// OutcomeSuccess builds a successful Outcome.
func OutcomeSuccess(format string, args ...any) Outcome {
	return Outcome{Success: true, Message: fmt.Sprintf(format, args...)}
}

// OutcomeFailure builds a failed Outcome.
func OutcomeFailure(format string, args ...any) Outcome {
	return Outcome{Success: false, Message: fmt.Sprintf(format, args...)}
}
