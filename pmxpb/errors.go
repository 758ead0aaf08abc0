package pmxpb

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d1nch8g/pmxout/assign"
)

// Classify wraps a failed call into an *assign.RemoteError. Unavailable is
// treated as a connection failure, every other code as an RPC fault.
func Classify(service, op string, err error) error {
	if err == nil {
		return nil
	}
	kind := assign.ErrRPC
	if st, ok := status.FromError(err); ok && st.Code() == codes.Unavailable {
		kind = assign.ErrConnection
	}
	return &assign.RemoteError{Service: service, Op: op, Kind: kind, Err: err}
}

// OptionalString maps the empty string to an absent field.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
