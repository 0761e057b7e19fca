package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGateway signals a reference to a gateway uid that is not
	// registered. Never retried server-side.
	ErrUnknownGateway = errors.New("unknown gateway")

	// ErrInvalidTransition signals a command state change outside the
	// forward-only lifecycle.
	ErrInvalidTransition = errors.New("invalid action state transition")
)

// MalformedPayload names the request field that is missing or unusable.
type MalformedPayload struct {
	Field string
}

func (e *MalformedPayload) Error() string {
	return fmt.Sprintf("malformed payload: missing field %q", e.Field)
}

// StorageError wraps a backing-store failure. The wrapped driver error is
// kept for logs; client responses only ever see the generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
