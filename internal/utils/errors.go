package utils

import "fmt"

// AppError wraps an operation, human-facing message, and underlying error.
type AppError struct {
	Op  string
	Msg string
	Err error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError constructs an AppError.
func NewAppError(op, msg string, err error) error {
	return &AppError{Op: op, Msg: msg, Err: err}
}

// MalformedEventError indicates a timeline event violating the boundary
// contract: unparsable timestamp, invalid payload, or missing order_id.
// It is a caller contract violation, never recovered; no partial score is
// produced once one is raised.
type MalformedEventError struct {
	Index  int
	Topic  string
	Reason string
}

func (e *MalformedEventError) Error() string {
	if e.Topic == "" {
		return fmt.Sprintf("malformed event at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("malformed event %s at index %d: %s", e.Topic, e.Index, e.Reason)
}
