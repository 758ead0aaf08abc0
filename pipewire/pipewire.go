package pipewire

import (
	"context"

	"github.com/d1nch8g/pmxout/assign"
)

// Registry defines the audio-graph port service consumed by the engine
type Registry interface {
	// ListPorts returns the ports of one node, or of every node when
	// nodeIDFilter is nil
	ListPorts(ctx context.Context, nodeIDFilter *uint32) ([]assign.Port, error)

	// Close releases the underlying connection
	Close() error
}
