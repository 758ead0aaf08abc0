package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/d1nch8g/pmxout/audio"
	"github.com/d1nch8g/pmxout/config"
	"github.com/d1nch8g/pmxout/engine"
	"github.com/d1nch8g/pmxout/logger"
	"github.com/d1nch8g/pmxout/metrics"
	"github.com/d1nch8g/pmxout/mixer"
	"github.com/d1nch8g/pmxout/pipewire"
)

const eventBuffer = 32

// session is one controller with its registries, running in the background.
type session struct {
	ctl    *engine.Controller
	ports  pipewire.Registry
	mixer  mixer.Registry
	cancel context.CancelFunc
	done   chan error
}

func openPorts(cfg *config.Config) (pipewire.Registry, error) {
	if cfg.PortSource == config.PortSourcePortAudio {
		return audio.NewDeviceRegistry(audio.PortAudio{}), nil
	}
	return pipewire.NewGRPCRegistry(cfg.PipewireRegistryURL)
}

// startSession connects to both registries and runs a controller until
// close is called or ctx ends. notify receives every controller event.
func (a *app) startSession(ctx context.Context, notify func(engine.Event)) (*session, error) {
	ports, err := openPorts(a.cfg)
	if err != nil {
		return nil, err
	}
	mx, err := mixer.NewGRPCRegistry(a.cfg.PmxRegistryURL)
	if err != nil {
		ports.Close()
		return nil, err
	}

	m, err := a.startMetrics(ctx)
	if err != nil {
		ports.Close()
		mx.Close()
		return nil, err
	}

	ctl := engine.NewController(engine.ControllerConfig{
		Retry: engine.RetryPolicy{
			MaxRetries:  a.cfg.RetryMax,
			Initial:     a.cfg.RetryInitial,
			MaxInterval: a.cfg.RetryMaxInterval,
		},
	}, ports, mx, engine.WithMetrics(m), engine.WithNotify(notify))

	runCtx, cancel := context.WithCancel(ctx)
	s := &session{ctl: ctl, ports: ports, mixer: mx, cancel: cancel, done: make(chan error, 1)}
	go func() { s.done <- ctl.Run(runCtx) }()
	return s, nil
}

func (s *session) close() {
	s.cancel()
	<-s.done
	s.ports.Close()
	s.mixer.Close()
}

// startMetrics serves /metrics when an address is configured. It returns a
// nil *metrics.Metrics otherwise.
func (a *app) startMetrics(ctx context.Context) (*metrics.Metrics, error) {
	if a.cfg.MetricsAddr == "" {
		return nil, nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: a.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log := logger.Named("metrics")
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return m, nil
}

// eventSink returns a notify func feeding a buffered channel, and the
// channel. Events are dropped when the buffer is full, so the controller
// loop never blocks on a reader that stopped listening.
func eventSink() (func(engine.Event), <-chan engine.Event) {
	ch := make(chan engine.Event, eventBuffer)
	return func(ev engine.Event) {
		select {
		case ch <- ev:
		default:
			logger.Named("cli").Warn().Str("event", ev.Kind.String()).Msg("event dropped")
		}
	}, ch
}

// waitLoaded blocks until the first load finished.
func waitLoaded(ctx context.Context, events <-chan engine.Event) (engine.Snapshot, error) {
	for {
		select {
		case <-ctx.Done():
			return engine.Snapshot{}, ctx.Err()
		case ev := <-events:
			switch ev.Kind {
			case engine.EventLoaded:
				return ev.Snapshot, nil
			case engine.EventLoadFailed:
				return engine.Snapshot{}, fmt.Errorf("load failed: %w", ev.Err)
			}
		}
	}
}
