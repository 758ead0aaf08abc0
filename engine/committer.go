package engine

import (
	"context"
	"fmt"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/mixer"
)

// Committer pushes an output's current selection to the mixer registry.
type Committer struct {
	registry mixer.Registry
}

func NewCommitter(registry mixer.Registry) *Committer {
	return &Committer{registry: registry}
}

// Commit sends both sides of state, so an update never depends on what the
// registry held before. Empty paths clear the field remotely.
func (c *Committer) Commit(ctx context.Context, state assign.MixerOutputState) (assign.OutputID, error) {
	if err := c.registry.UpdateOutputPortAssignments(ctx, state.ID, state.Selection()); err != nil {
		return 0, fmt.Errorf("failed to commit output %d: %w", state.ID, err)
	}
	return state.ID, nil
}
