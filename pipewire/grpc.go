package pipewire

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/pmxpb"
)

const serviceName = "pipewire-registry"

type GRPCRegistry struct {
	client pmxpb.PipewireClient
	conn   *grpc.ClientConn
}

// Ensure GRPCRegistry implements Registry interface
var _ Registry = (*GRPCRegistry)(nil)

// NewGRPCRegistry creates a client holding one long-lived connection to the
// port registry at url.
func NewGRPCRegistry(url string, opts ...grpc.DialOption) (*GRPCRegistry, error) {
	conn, err := pmxpb.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to pipewire registry: %w", err)
	}
	return NewGRPCRegistryFromConn(conn), nil
}

// NewGRPCRegistryFromConn wraps an existing connection. Close closes conn.
func NewGRPCRegistryFromConn(conn *grpc.ClientConn) *GRPCRegistry {
	return &GRPCRegistry{
		client: pmxpb.NewPipewireClient(conn),
		conn:   conn,
	}
}

func (r *GRPCRegistry) ListPorts(ctx context.Context, nodeIDFilter *uint32) ([]assign.Port, error) {
	resp, err := r.client.ListPorts(ctx, &pmxpb.ListPortsRequest{NodeIdFilter: nodeIDFilter})
	if err != nil {
		return nil, pmxpb.Classify(serviceName, "ListPorts", err)
	}

	result := make([]assign.Port, 0, len(resp.GetPorts()))
	for _, p := range resp.GetPorts() {
		result = append(result, assign.Port{
			Path:      p.GetPath(),
			Direction: direction(p.GetDirection()),
			NodeID:    p.GetNodeId(),
		})
	}
	return result, nil
}

func direction(d pmxpb.PortDirection) assign.Direction {
	switch d {
	case pmxpb.PortDirection_IN:
		return assign.DirectionIn
	case pmxpb.PortDirection_OUT:
		return assign.DirectionOut
	default:
		// Unknown wire values are dropped by the catalog.
		return assign.Direction(-1)
	}
}

func (r *GRPCRegistry) Close() error {
	return r.conn.Close()
}
