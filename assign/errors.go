package assign

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an output id is not present in the model.
var ErrNotFound = errors.New("output not found")

// ErrConnection marks failures to reach a remote service. These are transient
// and may be retried.
var ErrConnection = errors.New("connection error")

// ErrRPC marks failures where the service was reached but the call faulted.
var ErrRPC = errors.New("rpc error")

// RemoteError describes a failed call to one of the remote registries.
type RemoteError struct {
	Service string
	Op      string
	Kind    error // ErrConnection or ErrRPC
	Err     error
}

func (e *RemoteError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s: %v: %v", e.Service, e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RemoteError) Unwrap() error { return e.Err }

// Is lets errors.Is match the error kind as well as the cause chain.
func (e *RemoteError) Is(target error) bool { return target == e.Kind }

// Transient reports whether retrying the call may succeed.
func (e *RemoteError) Transient() bool { return e.Kind == ErrConnection }

// IsTransient reports whether err is a RemoteError worth retrying.
func IsTransient(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Transient()
	}
	return false
}

func notFound(id OutputID) error {
	return fmt.Errorf("output %d: %w", id, ErrNotFound)
}
