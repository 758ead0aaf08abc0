package engine

import (
	"context"
	"fmt"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/mixer"
	"github.com/d1nch8g/pmxout/pipewire"
)

// CatalogLoader fetches the full port list and partitions it by direction.
type CatalogLoader struct {
	ports pipewire.Registry
}

func NewCatalogLoader(ports pipewire.Registry) *CatalogLoader {
	return &CatalogLoader{ports: ports}
}

// Load lists every port, with no node filter. A failure leaves no partial
// catalog.
func (l *CatalogLoader) Load(ctx context.Context) (assign.PortCatalog, error) {
	ports, err := l.ports.ListPorts(ctx, nil)
	if err != nil {
		return assign.PortCatalog{}, fmt.Errorf("failed to load port catalog: %w", err)
	}
	return assign.NewPortCatalog(ports), nil
}

// OutputLoader fetches the logical outputs from the mixer registry.
type OutputLoader struct {
	registry mixer.Registry
}

func NewOutputLoader(registry mixer.Registry) *OutputLoader {
	return &OutputLoader{registry: registry}
}

// Load returns the outputs in registry order.
func (l *OutputLoader) Load(ctx context.Context) ([]assign.LogicalOutput, error) {
	outputs, err := l.registry.ListOutputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load outputs: %w", err)
	}
	return outputs, nil
}
