// Package memregistry serves the mixer and pipewire registries from memory.
// It backs the devserver command and the gRPC adapter tests.
package memregistry

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/d1nch8g/pmxout/pmxpb"
)

// Mixer is an in-memory pmx.PmxRegistry.
type Mixer struct {
	pmxpb.UnimplementedPmxRegistryServer

	mu       sync.Mutex
	outputs  []*pmxpb.PmxOutput
	updates  []*pmxpb.UpdateOutputPortAssignmentsRequest
	failures []error
}

var _ pmxpb.PmxRegistryServer = (*Mixer)(nil)

// NewMixer returns a registry holding outputs.
func NewMixer(outputs []*pmxpb.PmxOutput) *Mixer {
	return &Mixer{outputs: cloneAll(outputs)}
}

// FailNext makes the next calls return errs in order, one per call.
func (m *Mixer) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, errs...)
}

func (m *Mixer) popFailure() error {
	if len(m.failures) == 0 {
		return nil
	}
	err := m.failures[0]
	m.failures = m.failures[1:]
	return err
}

func (m *Mixer) ListOutputs(ctx context.Context, _ *pmxpb.EmptyRequest) (*pmxpb.ListOutputsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.popFailure(); err != nil {
		return nil, err
	}
	return &pmxpb.ListOutputsResponse{Outputs: cloneAll(m.outputs)}, nil
}

func (m *Mixer) UpdateOutputPortAssignments(ctx context.Context, req *pmxpb.UpdateOutputPortAssignmentsRequest) (*pmxpb.EmptyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.popFailure(); err != nil {
		return nil, err
	}
	for _, o := range m.outputs {
		if o.GetId() == req.GetId() {
			o.LeftPortPath = req.LeftPortPath
			o.RightPortPath = req.RightPortPath
			m.updates = append(m.updates, proto.Clone(req).(*pmxpb.UpdateOutputPortAssignmentsRequest))
			return &pmxpb.EmptyResponse{}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "output %d not found", req.GetId())
}

// Updates returns every accepted update in arrival order.
func (m *Mixer) Updates() []*pmxpb.UpdateOutputPortAssignmentsRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneAll(m.updates)
}

// Output returns the stored state of one output.
func (m *Mixer) Output(id uint32) (*pmxpb.PmxOutput, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.outputs {
		if o.GetId() == id {
			return proto.Clone(o).(*pmxpb.PmxOutput), true
		}
	}
	return nil, false
}

// Pipewire is an in-memory pmx.pipewire.Pipewire.
type Pipewire struct {
	pmxpb.UnimplementedPipewireServer

	mu       sync.Mutex
	ports    []*pmxpb.ListPort
	failures []error
}

var _ pmxpb.PipewireServer = (*Pipewire)(nil)

// NewPipewire returns a registry holding ports.
func NewPipewire(ports []*pmxpb.ListPort) *Pipewire {
	return &Pipewire{ports: cloneAll(ports)}
}

// FailNext makes the next calls return errs in order, one per call.
func (p *Pipewire) FailNext(errs ...error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, errs...)
}

func (p *Pipewire) ListPorts(ctx context.Context, req *pmxpb.ListPortsRequest) (*pmxpb.ListPortsResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.failures) > 0 {
		err := p.failures[0]
		p.failures = p.failures[1:]
		return nil, err
	}
	if req.NodeIdFilter == nil {
		return &pmxpb.ListPortsResponse{Ports: cloneAll(p.ports)}, nil
	}
	resp := &pmxpb.ListPortsResponse{}
	for _, port := range p.ports {
		if port.GetNodeId() == req.GetNodeIdFilter() {
			resp.Ports = append(resp.Ports, proto.Clone(port).(*pmxpb.ListPort))
		}
	}
	return resp, nil
}

// NewServer returns a gRPC server with both registries registered.
func NewServer(m *Mixer, p *Pipewire, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	if m != nil {
		pmxpb.RegisterPmxRegistryServer(s, m)
	}
	if p != nil {
		pmxpb.RegisterPipewireServer(s, p)
	}
	return s
}

func cloneAll[M proto.Message](msgs []M) []M {
	out := make([]M, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, proto.Clone(m).(M))
	}
	return out
}
