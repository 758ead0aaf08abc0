package cli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/d1nch8g/pmxout/logger"
	"github.com/d1nch8g/pmxout/memregistry"
	"github.com/d1nch8g/pmxout/pmxpb"
)

func (a *app) devserverCmd() *cobra.Command {
	var seedPath string
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Serve both registries from memory for local development",
		Long: `devserver serves the mixer registry and the pipewire port registry from
memory, seeded from a YAML file, on the addresses of PMX_REGISTRY_URL and
PIPEWIRE_REGISTRY_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := memregistry.DefaultSeed()
			if seedPath != "" {
				var err error
				if seed, err = memregistry.LoadSeed(seedPath); err != nil {
					return err
				}
			}
			return a.serveRegistries(cmd.Context(), seed)
		},
	}
	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML file with outputs and ports (built-in sample when empty)")
	return cmd
}

func (a *app) serveRegistries(ctx context.Context, seed *memregistry.Seed) error {
	pmxAddr, _, err := pmxpb.Target(a.cfg.PmxRegistryURL)
	if err != nil {
		return err
	}
	pwAddr, _, err := pmxpb.Target(a.cfg.PipewireRegistryURL)
	if err != nil {
		return err
	}

	mx := memregistry.NewMixer(seed.WireOutputs())
	pw := memregistry.NewPipewire(seed.WirePorts())
	opt := grpc.ChainUnaryInterceptor(logCalls)

	var servers []*grpc.Server
	var listeners []net.Listener
	if pmxAddr == pwAddr {
		servers = append(servers, memregistry.NewServer(mx, pw, opt))
		l, err := net.Listen("tcp", pmxAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", pmxAddr, err)
		}
		listeners = append(listeners, l)
	} else {
		for _, addr := range []string{pmxAddr, pwAddr} {
			l, err := net.Listen("tcp", addr)
			if err != nil {
				for _, prev := range listeners {
					prev.Close()
				}
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}
			listeners = append(listeners, l)
		}
		servers = append(servers, memregistry.NewServer(mx, nil, opt), memregistry.NewServer(nil, pw, opt))
	}

	log := logger.Named("devserver")
	g, gctx := errgroup.WithContext(ctx)
	for i := range servers {
		s, l := servers[i], listeners[i]
		g.Go(func() error {
			log.Info().Str("addr", l.Addr().String()).Msg("serving registry")
			return s.Serve(l)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		for _, s := range servers {
			s.GracefulStop()
		}
		return nil
	})
	err = g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	lvl := zerolog.DebugLevel
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	logger.Named("devserver").WithLevel(lvl).Err(err).
		Str("method", info.FullMethod).
		Dur("took", time.Since(start)).
		Msg("call")
	return resp, err
}
