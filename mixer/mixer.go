package mixer

import (
	"context"

	"github.com/d1nch8g/pmxout/assign"
)

// Registry defines the mixer-configuration service consumed by the engine
type Registry interface {
	// ListOutputs returns every logical output in registry order
	ListOutputs(ctx context.Context) ([]assign.LogicalOutput, error)

	// UpdateOutputPortAssignments persists both channels of an output.
	// Empty paths clear the channel
	UpdateOutputPortAssignments(ctx context.Context, id assign.OutputID, sel assign.Selection) error

	// Close releases the underlying connection
	Close() error
}
