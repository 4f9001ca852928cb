package types

import "fmt"

// Status is the outcome class of a setup stage.
type Status string

const (
	// StatusOK means the stage completed, possibly as a no-op.
	StatusOK Status = "ok"
	// StatusWarning means the stage completed with a condition the
	// operator should know about (nothing to back up, user declined).
	StatusWarning Status = "warning"
	// StatusFailed means the stage did not complete. Whether this is
	// fatal is the caller's decision, not the stage's.
	StatusFailed Status = "failed"
)

// Result is the explicit outcome of a stage. Stages never decide
// propagation themselves; callers inspect Status and apply their own
// fatal/non-fatal policy.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// OK returns a success result with an optional message.
func OK(format string, args ...interface{}) Result {
	return Result{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

// Warnf returns a warning result.
func Warnf(format string, args ...interface{}) Result {
	return Result{Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}

// Failf returns a failure result wrapping err.
func Failf(err error, format string, args ...interface{}) Result {
	return Result{Status: StatusFailed, Message: fmt.Sprintf(format, args...), Err: err}
}

// Failed reports whether the stage did not complete.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}
