package mixer

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/pmxpb"
)

const serviceName = "pmx-registry"

type GRPCRegistry struct {
	client pmxpb.PmxRegistryClient
	conn   *grpc.ClientConn
}

// Ensure GRPCRegistry implements Registry interface
var _ Registry = (*GRPCRegistry)(nil)

// NewGRPCRegistry creates a client holding one long-lived connection to the
// mixer registry at url.
func NewGRPCRegistry(url string, opts ...grpc.DialOption) (*GRPCRegistry, error) {
	conn, err := pmxpb.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mixer registry: %w", err)
	}
	return NewGRPCRegistryFromConn(conn), nil
}

// NewGRPCRegistryFromConn wraps an existing connection. Close closes conn.
func NewGRPCRegistryFromConn(conn *grpc.ClientConn) *GRPCRegistry {
	return &GRPCRegistry{
		client: pmxpb.NewPmxRegistryClient(conn),
		conn:   conn,
	}
}

func (r *GRPCRegistry) ListOutputs(ctx context.Context) ([]assign.LogicalOutput, error) {
	resp, err := r.client.ListOutputs(ctx, &pmxpb.EmptyRequest{})
	if err != nil {
		return nil, pmxpb.Classify(serviceName, "ListOutputs", err)
	}

	result := make([]assign.LogicalOutput, 0, len(resp.GetOutputs()))
	for _, o := range resp.GetOutputs() {
		result = append(result, assign.LogicalOutput{
			ID:            assign.OutputID(o.GetId()),
			Name:          o.GetName(),
			LeftPortPath:  o.GetLeftPortPath(),
			RightPortPath: o.GetRightPortPath(),
		})
	}
	return result, nil
}

func (r *GRPCRegistry) UpdateOutputPortAssignments(ctx context.Context, id assign.OutputID, sel assign.Selection) error {
	req := &pmxpb.UpdateOutputPortAssignmentsRequest{
		Id:            uint32(id),
		LeftPortPath:  pmxpb.OptionalString(sel.Left),
		RightPortPath: pmxpb.OptionalString(sel.Right),
	}
	if _, err := r.client.UpdateOutputPortAssignments(ctx, req); err != nil {
		return pmxpb.Classify(serviceName, "UpdateOutputPortAssignments", err)
	}
	return nil
}

func (r *GRPCRegistry) Close() error {
	return r.conn.Close()
}
