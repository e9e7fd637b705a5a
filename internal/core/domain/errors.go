package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a descriptor or a referenced scene file is absent
	ErrNotFound = errors.New("not found")

	// ErrMalformedData is returned when a descriptor exists but is not a valid transfer descriptor
	ErrMalformedData = errors.New("malformed descriptor")

	// ErrUnsupportedFormat is returned when a save format is outside FileFormats
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInvalidLoadType is returned when a load mode is neither import nor reference
	ErrInvalidLoadType = errors.New("invalid load type")

	// ErrUnknownKind is returned when a path does not belong to any registered asset kind
	ErrUnknownKind = errors.New("unknown asset kind")
)

// HostOperationError wraps a failure reported by the scene host.
// The underlying error is kept untouched and reachable through Unwrap.
type HostOperationError struct {
	Op  string
	Err error
}

func (e *HostOperationError) Error() string {
	return fmt.Sprintf("host %s: %v", e.Op, e.Err)
}

func (e *HostOperationError) Unwrap() error {
	return e.Err
}

// NewHostError returns nil when err is nil, otherwise a *HostOperationError for op
func NewHostError(op string, err error) error {
	if err == nil {
		return nil
	}
	var hostErr *HostOperationError
	if errors.As(err, &hostErr) {
		return err
	}
	return &HostOperationError{Op: op, Err: err}
}
