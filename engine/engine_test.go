package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/logger"
	"github.com/d1nch8g/pmxout/metrics"
)

type update struct {
	ID  assign.OutputID
	Sel assign.Selection
}

type fakeMixer struct {
	mu         sync.Mutex
	outputs    []assign.LogicalOutput
	listErrs   []error
	updateErrs []error
	updates    []update

	// when set, every update reports on started and waits for release
	started chan assign.Selection
	release chan struct{}
}

func (f *fakeMixer) ListOutputs(ctx context.Context) ([]assign.LogicalOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		return nil, err
	}
	return append([]assign.LogicalOutput(nil), f.outputs...), nil
}

func (f *fakeMixer) UpdateOutputPortAssignments(ctx context.Context, id assign.OutputID, sel assign.Selection) error {
	f.mu.Lock()
	f.updates = append(f.updates, update{ID: id, Sel: sel})
	var err error
	if len(f.updateErrs) > 0 {
		err = f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
	}
	started, release := f.started, f.release
	f.mu.Unlock()

	if started != nil {
		started <- sel
		select {
		case <-release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err == nil {
		f.store(id, sel)
	}
	return err
}

func (f *fakeMixer) store(id assign.OutputID, sel assign.Selection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.outputs {
		if f.outputs[i].ID == id {
			f.outputs[i].LeftPortPath = sel.Left
			f.outputs[i].RightPortPath = sel.Right
		}
	}
}

func (f *fakeMixer) Close() error { return nil }

func (f *fakeMixer) gate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = make(chan assign.Selection, 8)
	f.release = make(chan struct{})
}

func (f *fakeMixer) recorded() []update {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]update(nil), f.updates...)
}

type fakePorts struct {
	mu    sync.Mutex
	ports []assign.Port
	errs  []error
	hold  chan struct{}
}

func (f *fakePorts) ListPorts(ctx context.Context, nodeIDFilter *uint32) ([]assign.Port, error) {
	f.mu.Lock()
	hold := f.hold
	var err error
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	ports := append([]assign.Port(nil), f.ports...)
	f.mu.Unlock()

	if nodeIDFilter != nil {
		return nil, errors.New("catalog must be loaded unfiltered")
	}
	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return ports, nil
}

func (f *fakePorts) Close() error { return nil }

func scenarioPorts() *fakePorts {
	return &fakePorts{ports: []assign.Port{
		{Path: "/a/in1", Direction: assign.DirectionIn},
		{Path: "/a/out1", Direction: assign.DirectionOut},
		{Path: "/b/in2", Direction: assign.DirectionIn},
	}}
}

func scenarioMixer() *fakeMixer {
	return &fakeMixer{outputs: []assign.LogicalOutput{{ID: 1, Name: "Main"}}}
}

func rpcErr(kind error) error {
	return &assign.RemoteError{Service: "pmx-registry", Op: "UpdateOutputPortAssignments", Kind: kind, Err: errors.New("boom")}
}

type harness struct {
	c      *Controller
	events chan Event
	cancel context.CancelFunc
	done   chan error
}

func start(t *testing.T, ports *fakePorts, mx *fakeMixer, opts ...Option) *harness {
	t.Helper()
	h := &harness{events: make(chan Event, 256), done: make(chan error, 1)}
	opts = append([]Option{
		WithLogger(logger.Nop()),
		WithNotify(func(ev Event) { h.events <- ev }),
	}, opts...)
	h.c = NewController(ControllerConfig{
		Retry: RetryPolicy{MaxRetries: 3, Initial: time.Millisecond, MaxInterval: 2 * time.Millisecond},
	}, ports, mx, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- h.c.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-h.done
	})
	return h
}

func (h *harness) waitFor(t *testing.T, kind EventKind) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-h.events:
			if ev.Kind == kind {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", kind)
			return Event{}
		}
	}
}

func TestController_LoadsRegistries(t *testing.T) {
	h := start(t, scenarioPorts(), scenarioMixer())

	ev := h.waitFor(t, EventLoaded)
	s := ev.Snapshot
	assert.Equal(t, PhaseReady, s.Phase)
	assert.Equal(t, []string{"/a/in1", "/b/in2"}, s.Catalog.In)
	assert.Equal(t, []string{"/a/out1"}, s.Catalog.Out)
	require.Len(t, s.Outputs, 1)
	out := s.Outputs[0]
	assert.Equal(t, assign.OutputID(1), out.ID)
	assert.Equal(t, "Main", out.Name)
	assert.Empty(t, out.Left)
	assert.Empty(t, out.Right)
	assert.True(t, out.Saved)
	assert.Equal(t, assign.StatusSynced, out.Status)
}

func TestController_SelectBeforeLoad(t *testing.T) {
	ports := scenarioPorts()
	ports.hold = make(chan struct{})
	h := start(t, ports, scenarioMixer())

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	assert.ErrorIs(t, err, ErrNotReady)

	s, err := h.c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseLoading, s.Phase)

	close(ports.hold)
	h.waitFor(t, EventLoaded)
}

func TestController_SelectCommitsBothSides(t *testing.T) {
	mx := &fakeMixer{outputs: []assign.LogicalOutput{{ID: 1, Name: "Main", RightPortPath: "/b/in2"}}}
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)

	state, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	require.NoError(t, err)
	assert.Equal(t, "/a/in1", state.Left)
	assert.Equal(t, "/b/in2", state.Right)
	assert.False(t, state.Saved)
	assert.Equal(t, assign.StatusCommitting, state.Status)

	sel := h.waitFor(t, EventSelected)
	assert.Equal(t, assign.SideLeft, sel.Side)
	assert.Equal(t, "/a/in1", sel.Path)

	ev := h.waitFor(t, EventCommitted)
	assert.Equal(t, assign.OutputID(1), ev.ID)

	assert.Equal(t, []update{{ID: 1, Sel: assign.Selection{Left: "/a/in1", Right: "/b/in2"}}}, mx.recorded())

	out, ok := ev.Snapshot.Output(1)
	require.True(t, ok)
	assert.True(t, out.Saved)
	assert.Equal(t, assign.StatusSynced, out.Status)
	assert.Equal(t, assign.Selection{Left: "/a/in1", Right: "/b/in2"}, out.Persisted())
}

func TestController_SameOutputCommitsAreSerialized(t *testing.T) {
	mx := scenarioMixer()
	mx.gate()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)
	ctx := context.Background()

	_, err := h.c.SelectLeft(ctx, 1, "/a/in1")
	require.NoError(t, err)
	assert.Equal(t, assign.Selection{Left: "/a/in1"}, <-mx.started)

	// both edits land while the first commit is in flight
	_, err = h.c.SelectRight(ctx, 1, "/b/in2")
	require.NoError(t, err)
	_, err = h.c.SelectLeft(ctx, 1, "/b/in2")
	require.NoError(t, err)
	assert.Len(t, mx.recorded(), 1)

	mx.release <- struct{}{}
	first := h.waitFor(t, EventCommitted)
	out, _ := first.Snapshot.Output(1)
	assert.False(t, out.Saved, "newer edit still pending")
	assert.Equal(t, assign.StatusCommitting, out.Status)

	assert.Equal(t, assign.Selection{Left: "/b/in2", Right: "/b/in2"}, <-mx.started)
	mx.release <- struct{}{}
	second := h.waitFor(t, EventCommitted)

	out, _ = second.Snapshot.Output(1)
	assert.True(t, out.Saved)
	assert.Equal(t, assign.StatusSynced, out.Status)
	assert.Len(t, mx.recorded(), 2)
}

func TestController_DifferentOutputsCommitIndependently(t *testing.T) {
	mx := &fakeMixer{outputs: []assign.LogicalOutput{{ID: 1, Name: "Main"}, {ID: 2, Name: "Phones"}}}
	mx.gate()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)
	ctx := context.Background()

	_, err := h.c.SelectLeft(ctx, 1, "/a/in1")
	require.NoError(t, err)
	_, err = h.c.SelectLeft(ctx, 2, "/b/in2")
	require.NoError(t, err)

	// both commits are in flight at once
	<-mx.started
	<-mx.started
	mx.release <- struct{}{}
	mx.release <- struct{}{}
	h.waitFor(t, EventCommitted)
	ev := h.waitFor(t, EventCommitted)

	for _, o := range ev.Snapshot.Outputs {
		assert.True(t, o.Saved, "output %d", o.ID)
	}
}

func TestController_CommitFailureMarksOutOfSync(t *testing.T) {
	mx := scenarioMixer()
	mx.updateErrs = []error{rpcErr(assign.ErrRPC)}
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	require.NoError(t, err)

	ev := h.waitFor(t, EventCommitFailed)
	assert.ErrorIs(t, ev.Err, assign.ErrRPC)
	out, _ := ev.Snapshot.Output(1)
	assert.Equal(t, assign.StatusOutOfSync, out.Status)
	assert.False(t, out.Saved)
	assert.NotEmpty(t, out.LastError)
	assert.Equal(t, "/a/in1", out.Left, "local edit is kept")
	assert.Len(t, mx.recorded(), 1, "rpc faults are not retried")

	require.NoError(t, h.c.Retry(context.Background(), 1))
	ev = h.waitFor(t, EventCommitted)
	out, _ = ev.Snapshot.Output(1)
	assert.Equal(t, assign.StatusSynced, out.Status)
	assert.True(t, out.Saved)
	assert.Empty(t, out.LastError)
}

func TestController_TransientCommitErrorsAreRetried(t *testing.T) {
	mx := scenarioMixer()
	mx.updateErrs = []error{rpcErr(assign.ErrConnection), rpcErr(assign.ErrConnection)}
	reg := prometheus.NewRegistry()
	h := start(t, scenarioPorts(), mx, WithMetrics(metrics.New(reg)))
	h.waitFor(t, EventLoaded)

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	require.NoError(t, err)

	ev := h.waitFor(t, EventCommitted)
	out, _ := ev.Snapshot.Output(1)
	assert.True(t, out.Saved)
	assert.Len(t, mx.recorded(), 3)

	assert.Equal(t, 2.0, counterValue(t, reg, "pmxout_retries_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "pmxout_commits_total"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var sum float64
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

func TestController_RetriesGiveUp(t *testing.T) {
	mx := scenarioMixer()
	for range 4 {
		mx.updateErrs = append(mx.updateErrs, rpcErr(assign.ErrConnection))
	}
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	require.NoError(t, err)

	ev := h.waitFor(t, EventCommitFailed)
	assert.ErrorIs(t, ev.Err, assign.ErrConnection)
	assert.Len(t, mx.recorded(), 4, "one attempt plus three retries")
}

func TestController_RetryOnSyncedOutputIsNoop(t *testing.T) {
	mx := scenarioMixer()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)

	require.NoError(t, h.c.Retry(context.Background(), 1))
	_, err := h.c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mx.recorded())

	assert.ErrorIs(t, h.c.Retry(context.Background(), 9), assign.ErrNotFound)
}

func TestController_UnknownOutput(t *testing.T) {
	h := start(t, scenarioPorts(), scenarioMixer())
	h.waitFor(t, EventLoaded)

	_, err := h.c.SelectRight(context.Background(), 42, "/a/in1")
	assert.ErrorIs(t, err, assign.ErrNotFound)

	s, err := h.c.Snapshot(context.Background())
	require.NoError(t, err)
	out, _ := s.Output(1)
	assert.True(t, out.Saved)
}

func TestController_LoadFailureAndReload(t *testing.T) {
	ports := scenarioPorts()
	ports.errs = []error{&assign.RemoteError{Service: "pipewire-registry", Op: "ListPorts", Kind: assign.ErrRPC, Err: errors.New("down")}}
	h := start(t, ports, scenarioMixer())

	ev := h.waitFor(t, EventLoadFailed)
	assert.ErrorIs(t, ev.Err, assign.ErrRPC)
	assert.Equal(t, PhaseLoadFailed, ev.Snapshot.Phase)
	assert.Error(t, ev.Snapshot.LoadErr)

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, h.c.Reload(context.Background()))
	ev = h.waitFor(t, EventLoaded)
	assert.Equal(t, PhaseReady, ev.Snapshot.Phase)
	assert.NoError(t, ev.Snapshot.LoadErr)
	assert.Len(t, ev.Snapshot.Outputs, 1)
}

func TestController_TransientLoadErrorIsRetried(t *testing.T) {
	mx := scenarioMixer()
	mx.listErrs = []error{&assign.RemoteError{Service: "pmx-registry", Op: "ListOutputs", Kind: assign.ErrConnection, Err: errors.New("refused")}}
	h := start(t, scenarioPorts(), mx)

	ev := h.waitFor(t, EventLoaded)
	assert.Len(t, ev.Snapshot.Outputs, 1)
}

func TestController_ReloadDiscardsEdits(t *testing.T) {
	mx := scenarioMixer()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)

	_, err := h.c.SelectLeft(context.Background(), 1, "/a/in1")
	require.NoError(t, err)
	h.waitFor(t, EventCommitted)

	mx.mu.Lock()
	mx.outputs = []assign.LogicalOutput{{ID: 1, Name: "Main", LeftPortPath: "/b/in2"}}
	mx.mu.Unlock()

	require.NoError(t, h.c.Reload(context.Background()))
	ev := h.waitFor(t, EventLoaded)
	out, _ := ev.Snapshot.Output(1)
	assert.Equal(t, "/b/in2", out.Left)
	assert.True(t, out.Saved)
}

func TestController_ReloadWaitsForInflightCommit(t *testing.T) {
	mx := scenarioMixer()
	mx.gate()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)
	ctx := context.Background()

	_, err := h.c.SelectLeft(ctx, 1, "/a/in1")
	require.NoError(t, err)
	assert.Equal(t, assign.Selection{Left: "/a/in1"}, <-mx.started)

	require.NoError(t, h.c.Reload(ctx))
	_, err = h.c.SelectRight(ctx, 1, "/b/in2")
	assert.ErrorIs(t, err, ErrNotReady, "edits wait until the reload completes")

	mx.release <- struct{}{}
	ev := h.waitFor(t, EventLoaded)
	out, _ := ev.Snapshot.Output(1)
	assert.Equal(t, "/a/in1", out.Left, "registry is read after the commit landed")
	assert.True(t, out.Saved)

	_, err = h.c.SelectRight(ctx, 1, "/b/in2")
	require.NoError(t, err)
	assert.Equal(t, assign.Selection{Left: "/a/in1", Right: "/b/in2"}, <-mx.started)
	mx.release <- struct{}{}
	ev = h.waitFor(t, EventCommitted)

	out, _ = ev.Snapshot.Output(1)
	assert.Equal(t, assign.Selection{Left: "/a/in1", Right: "/b/in2"}, out.Selection())
	assert.Equal(t, assign.StatusSynced, out.Status)
	assert.Len(t, mx.recorded(), 2)
}

func TestController_RetryWhileCommittingIsNoop(t *testing.T) {
	mx := scenarioMixer()
	mx.updateErrs = []error{rpcErr(assign.ErrRPC)}
	mx.gate()
	h := start(t, scenarioPorts(), mx)
	h.waitFor(t, EventLoaded)
	ctx := context.Background()

	_, err := h.c.SelectLeft(ctx, 1, "/a/in1")
	require.NoError(t, err)
	<-mx.started

	require.NoError(t, h.c.Retry(ctx, 1))
	mx.release <- struct{}{}
	ev := h.waitFor(t, EventCommitFailed)
	out, _ := ev.Snapshot.Output(1)
	assert.Equal(t, assign.StatusOutOfSync, out.Status)

	snap, err := h.c.Snapshot(ctx)
	require.NoError(t, err)
	out, _ = snap.Output(1)
	assert.Equal(t, assign.StatusOutOfSync, out.Status, "no follow-up commit was queued")
	assert.Len(t, mx.recorded(), 1)
}

func TestController_Stopped(t *testing.T) {
	h := start(t, scenarioPorts(), scenarioMixer())
	h.waitFor(t, EventLoaded)

	err := h.c.Run(context.Background())
	assert.Error(t, err, "second run is rejected")

	h.cancel()
	assert.ErrorIs(t, <-h.done, context.Canceled)
	h.done <- nil

	_, err = h.c.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
}
