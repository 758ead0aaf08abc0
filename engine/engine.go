package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/logger"
	"github.com/d1nch8g/pmxout/metrics"
	"github.com/d1nch8g/pmxout/mixer"
	"github.com/d1nch8g/pmxout/pipewire"
)

var (
	// ErrNotReady is returned for edits issued before the initial load
	// completed, or after it failed.
	ErrNotReady = errors.New("outputs are not loaded")
	// ErrStopped is returned once the controller loop has exited.
	ErrStopped = errors.New("controller stopped")
)

// Phase is the load state of the controller.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseLoadFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseLoadFailed:
		return "load failed"
	default:
		return "unknown"
	}
}

// EventKind tells the presentation layer what changed.
type EventKind int

const (
	EventLoading EventKind = iota
	EventLoaded
	EventLoadFailed
	EventSelected
	EventCommitted
	EventCommitFailed
)

func (k EventKind) String() string {
	switch k {
	case EventLoading:
		return "loading"
	case EventLoaded:
		return "loaded"
	case EventLoadFailed:
		return "load failed"
	case EventSelected:
		return "selected"
	case EventCommitted:
		return "committed"
	case EventCommitFailed:
		return "commit failed"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the controller state, safe to keep and read from
// any goroutine.
type Snapshot struct {
	Phase   Phase
	Outputs []assign.MixerOutputState
	Catalog assign.PortCatalog
	LoadErr error
}

// Output returns the state of one output in the snapshot.
func (s Snapshot) Output(id assign.OutputID) (assign.MixerOutputState, bool) {
	for _, o := range s.Outputs {
		if o.ID == id {
			return o, true
		}
	}
	return assign.MixerOutputState{}, false
}

// Event is emitted after every state change. ID, Side and Path are set for
// selection and commit events; Err for failures.
type Event struct {
	Kind     EventKind
	ID       assign.OutputID
	Side     assign.Side
	Path     string
	Err      error
	Snapshot Snapshot
}

// ControllerConfig holds the tunables of the controller
type ControllerConfig struct {
	Retry RetryPolicy
	// CallTimeout bounds every single remote attempt.
	CallTimeout time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to logger.Named("engine").
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithMetrics records loads, commits and retries on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithNotify registers fn for every Event. fn runs on the controller loop
// and must not call back into the controller synchronously.
func WithNotify(fn func(Event)) Option {
	return func(c *Controller) { c.notify = fn }
}

// Controller reconciles the local assignment model with the registries.
// All model access happens on the goroutine running Run; loads and commits
// run as separate tasks that post their results back to it.
type Controller struct {
	config    ControllerConfig
	catalog   *CatalogLoader
	outputs   *OutputLoader
	committer *Committer

	log     *logger.Logger
	metrics *metrics.Metrics
	notify  func(Event)

	msgs    chan func()
	stopped chan struct{}
	tasks   sync.WaitGroup
	runCtx  context.Context

	// owned by the loop
	model    *assign.Model
	phase    Phase
	loadErr  error
	gen      uint64
	inflight map[assign.OutputID]bool
	pending  map[assign.OutputID]bool
	// a load waiting for in-flight commits to return
	loadQueued bool

	isRunning    bool
	runningMutex sync.Mutex
}

// NewController creates a controller over the given port source and mixer
// registry. The registries stay owned by the caller.
func NewController(config ControllerConfig, ports pipewire.Registry, registry mixer.Registry, opts ...Option) *Controller {
	if config.Retry == (RetryPolicy{}) {
		config.Retry = DefaultRetryPolicy
	}
	if config.CallTimeout == 0 {
		config.CallTimeout = 10 * time.Second
	}

	c := &Controller{
		config:    config,
		catalog:   NewCatalogLoader(ports),
		outputs:   NewOutputLoader(registry),
		committer: NewCommitter(registry),
		notify:    func(Event) {},
		msgs:      make(chan func()),
		stopped:   make(chan struct{}),
		model:     assign.NewModel(),
		inflight:  make(map[assign.OutputID]bool),
		pending:   make(map[assign.OutputID]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Named("engine")
	}
	if c.notify == nil {
		c.notify = func(Event) {}
	}
	return c
}

// Run loads both registries and then serves requests until ctx is done.
// A controller runs once.
func (c *Controller) Run(ctx context.Context) error {
	c.runningMutex.Lock()
	if c.isRunning {
		c.runningMutex.Unlock()
		return fmt.Errorf("controller is already running")
	}
	c.isRunning = true
	c.runningMutex.Unlock()

	c.runCtx = ctx
	c.log.Info().Msg("controller started")
	c.startLoad()

	for {
		select {
		case <-ctx.Done():
			close(c.stopped)
			c.tasks.Wait()
			c.log.Info().Msg("controller stopped")
			return ctx.Err()
		case fn := <-c.msgs:
			fn()
		}
	}
}

// call runs fn on the loop and waits for it.
func (c *Controller) call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	select {
	case c.msgs <- func() { fn(); close(done) }:
	case <-c.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post hands a task result to the loop. It is dropped once the loop exited.
func (c *Controller) post(fn func()) {
	select {
	case c.msgs <- fn:
	case <-c.stopped:
	}
}

func (c *Controller) spawn(task func(ctx context.Context)) {
	c.tasks.Add(1)
	go func() {
		defer c.tasks.Done()
		task(c.runCtx)
	}()
}

func (c *Controller) emit(ev Event) {
	ev.Snapshot = c.snapshot()
	c.notify(ev)
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Phase:   c.phase,
		Outputs: c.model.Outputs(),
		Catalog: c.model.Catalog(),
		LoadErr: c.loadErr,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	err := c.call(ctx, func() { s = c.snapshot() })
	return s, err
}

// Reload discards the model and loads both registries again. Loading starts
// once in-flight commits have returned, so the registries are read after
// them; edits not yet committed are dropped.
func (c *Controller) Reload(ctx context.Context) error {
	return c.call(ctx, c.startLoad)
}

// SelectLeft sets the left source of an output and commits it.
func (c *Controller) SelectLeft(ctx context.Context, id assign.OutputID, path string) (assign.MixerOutputState, error) {
	return c.Select(ctx, id, assign.SideLeft, path)
}

// SelectRight sets the right source of an output and commits it.
func (c *Controller) SelectRight(ctx context.Context, id assign.OutputID, path string) (assign.MixerOutputState, error) {
	return c.Select(ctx, id, assign.SideRight, path)
}

// Select applies the selection locally and schedules a commit. The returned
// state reflects the edit before the registry confirmed it.
func (c *Controller) Select(ctx context.Context, id assign.OutputID, side assign.Side, path string) (assign.MixerOutputState, error) {
	var (
		state assign.MixerOutputState
		opErr error
	)
	err := c.call(ctx, func() {
		if c.phase != PhaseReady {
			opErr = ErrNotReady
			return
		}
		state, opErr = c.model.Select(id, side, path)
		if opErr != nil {
			return
		}
		c.log.Debug().Uint32("output", uint32(id)).Str("side", side.String()).Str("path", path).Msg("selection changed")
		c.scheduleCommit(id)
		state, _ = c.model.Get(id)
		c.emit(Event{Kind: EventSelected, ID: id, Side: side, Path: path})
	})
	if err != nil {
		return assign.MixerOutputState{}, err
	}
	return state, opErr
}

// Retry commits an output again, typically after it went out of sync.
// Outputs that are saved and synced are left alone.
func (c *Controller) Retry(ctx context.Context, id assign.OutputID) error {
	var opErr error
	err := c.call(ctx, func() {
		if c.phase != PhaseReady {
			opErr = ErrNotReady
			return
		}
		var state assign.MixerOutputState
		state, opErr = c.model.Get(id)
		if opErr != nil {
			return
		}
		if c.inflight[id] || (state.Saved && state.Status == assign.StatusSynced) {
			return
		}
		c.scheduleCommit(id)
	})
	if err != nil {
		return err
	}
	return opErr
}

func (c *Controller) startLoad() {
	c.gen++
	c.phase = PhaseLoading
	c.loadErr = nil
	clear(c.pending)
	c.emit(Event{Kind: EventLoading})

	if len(c.inflight) > 0 {
		c.loadQueued = true
		c.log.Debug().Int("inflight", len(c.inflight)).Msg("load waits for in-flight commits")
		return
	}
	c.spawnLoad()
}

func (c *Controller) spawnLoad() {
	c.loadQueued = false
	gen := c.gen
	c.spawn(func(ctx context.Context) {
		var (
			catalog assign.PortCatalog
			outputs []assign.LogicalOutput
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			err := c.retry(gctx, "list_ports", func(ctx context.Context) error {
				var err error
				catalog, err = c.catalog.Load(ctx)
				return err
			})
			c.metrics.ObserveLoad("ports", err)
			return err
		})
		g.Go(func() error {
			err := c.retry(gctx, "list_outputs", func(ctx context.Context) error {
				var err error
				outputs, err = c.outputs.Load(ctx)
				return err
			})
			c.metrics.ObserveLoad("outputs", err)
			return err
		})
		err := g.Wait()
		c.post(func() { c.loadDone(gen, outputs, catalog, err) })
	})
}

func (c *Controller) loadDone(gen uint64, outputs []assign.LogicalOutput, catalog assign.PortCatalog, err error) {
	if gen != c.gen {
		c.log.Debug().Uint64("generation", gen).Msg("discarding stale load")
		return
	}
	if err != nil {
		c.phase = PhaseLoadFailed
		c.loadErr = err
		c.log.Error().Err(err).Msg("load failed")
		c.emit(Event{Kind: EventLoadFailed, Err: err})
		return
	}
	c.model.Initialize(outputs, catalog)
	c.phase = PhaseReady
	c.log.Info().
		Int("outputs", c.model.Len()).
		Int("in_ports", len(catalog.In)).
		Int("out_ports", len(catalog.Out)).
		Msg("registries loaded")
	c.emit(Event{Kind: EventLoaded})
}

// scheduleCommit starts a commit for id, or marks one pending if a commit
// for the same output is in flight. The pending commit is issued with the
// latest state once the current one returns.
func (c *Controller) scheduleCommit(id assign.OutputID) {
	if c.inflight[id] {
		c.pending[id] = true
		return
	}
	state, err := c.model.Get(id)
	if err != nil {
		return
	}
	_ = c.model.MarkCommitting(id)
	c.inflight[id] = true
	gen := c.gen

	c.spawn(func(ctx context.Context) {
		start := time.Now()
		err := c.retry(ctx, "commit", func(ctx context.Context) error {
			_, err := c.committer.Commit(ctx, state)
			return err
		})
		c.metrics.ObserveCommit(time.Since(start), err)
		c.post(func() { c.commitDone(gen, state, err) })
	})
}

func (c *Controller) commitDone(gen uint64, sent assign.MixerOutputState, err error) {
	id := sent.ID
	delete(c.inflight, id)
	if gen != c.gen {
		c.log.Debug().Err(err).Uint32("output", uint32(id)).Msg("commit returned after reload")
		if c.loadQueued && len(c.inflight) == 0 {
			c.spawnLoad()
		}
		return
	}
	follow := c.pending[id]
	delete(c.pending, id)

	if err != nil {
		c.log.Warn().Err(err).Uint32("output", uint32(id)).Msg("commit failed")
		_ = c.model.MarkCommitFailed(id, err)
		c.emit(Event{Kind: EventCommitFailed, ID: id, Err: err})
		if follow {
			c.scheduleCommit(id)
		}
		return
	}

	_ = c.model.ApplyCommitResult(id, sent.Selection())
	c.log.Debug().Uint32("output", uint32(id)).Msg("commit confirmed")
	// An edit made while this commit was in flight is still unsaved.
	if state, _ := c.model.Get(id); !state.Saved {
		c.scheduleCommit(id)
	}
	c.emit(Event{Kind: EventCommitted, ID: id})
}

func (c *Controller) retry(ctx context.Context, op string, fn func(context.Context) error) error {
	attempt := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
		defer cancel()
		return fn(ctx)
	}
	return c.config.Retry.Do(ctx, attempt, func(err error, next time.Duration) {
		c.metrics.IncRetry(op)
		c.log.Warn().Err(err).Str("op", op).Dur("backoff", next).Msg("retrying")
	})
}
