package audio

import (
	"context"
	"fmt"
	"sync"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/pipewire"
)

// DeviceRegistry serves local audio device channels as ports. Capture
// channels produce audio and are listed as out ports; playback channels
// are listed as in ports. The device index is used as node id.
type DeviceRegistry struct {
	sys System
	mu  sync.Mutex
}

// Ensure DeviceRegistry implements Registry interface
var _ pipewire.Registry = (*DeviceRegistry)(nil)

func NewDeviceRegistry(sys System) *DeviceRegistry {
	return &DeviceRegistry{sys: sys}
}

// ListPorts enumerates devices. The audio system is initialized for the
// duration of the call only.
func (r *DeviceRegistry) ListPorts(ctx context.Context, nodeIDFilter *uint32) ([]assign.Port, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.sys.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize audio system: %w", err)
	}
	defer r.sys.Terminate()

	devices, err := r.sys.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list audio devices: %w", err)
	}

	ports := Ports(devices)
	if nodeIDFilter == nil {
		return ports, nil
	}
	filtered := ports[:0]
	for _, p := range ports {
		if p.NodeID == *nodeIDFilter {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *DeviceRegistry) Close() error { return nil }

// Ports names every channel of devices, in device order, capture channels
// first. Devices sharing a name are told apart by their index.
func Ports(devices []Device) []assign.Port {
	seen := make(map[string]int, len(devices))
	for _, d := range devices {
		seen[d.Name]++
	}

	var ports []assign.Port
	for _, d := range devices {
		name := d.Name
		if seen[name] > 1 {
			name = fmt.Sprintf("%s#%d", name, d.Index)
		}
		for i := 1; i <= d.MaxInputChannels; i++ {
			ports = append(ports, assign.Port{
				Path:      fmt.Sprintf("%s/capture_%d", name, i),
				Direction: assign.DirectionOut,
				NodeID:    uint32(d.Index),
			})
		}
		for i := 1; i <= d.MaxOutputChannels; i++ {
			ports = append(ports, assign.Port{
				Path:      fmt.Sprintf("%s/playback_%d", name, i),
				Direction: assign.DirectionIn,
				NodeID:    uint32(d.Index),
			})
		}
	}
	return ports
}
