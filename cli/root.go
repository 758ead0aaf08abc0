// Package cli wires configuration, registries and the controller into the
// pmxout commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/d1nch8g/pmxout/config"
	"github.com/d1nch8g/pmxout/logger"
)

type app struct {
	cfg *config.Config

	envFiles    []string
	pmxURL      string
	pipewireURL string
	portSource  string
	logLevel    string
	logFormat   string
	logFile     string
	metricsAddr string
	retryMax    int

	logOut io.Closer
}

// NewRootCmd builds the command tree. Without a subcommand the terminal UI
// is started.
func NewRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pmxout",
		Short: "Assign source ports to pmx mixer outputs",
		Long: `pmxout lists the logical outputs of the pmx mixer registry and assigns
their left and right source ports from the pipewire port catalog.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	pf.StringVar(&a.pmxURL, "pmx-url", "", "mixer registry url (PMX_REGISTRY_URL)")
	pf.StringVar(&a.pipewireURL, "pipewire-url", "", "port registry url (PIPEWIRE_REGISTRY_URL)")
	pf.StringVar(&a.portSource, "port-source", "", "port catalog source: pipewire or portaudio (PORT_SOURCE)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (LOG_LEVEL)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json (LOG_FORMAT)")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this file (LOG_FILE)")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address (METRICS_ADDR)")
	pf.IntVar(&a.retryMax, "retry-max", 0, "retries for transient registry errors (RETRY_MAX)")

	root.AddCommand(
		a.tuiCmd(),
		a.listCmd(),
		a.assignCmd(),
		a.devserverCmd(),
	)
	return root
}

// Execute runs the command line with ctx as the base context.
func Execute(ctx context.Context) error {
	a := &app{}
	// post-run hooks are skipped when a command fails
	defer a.closeLog()
	return a.rootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.envFiles...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	override("pmx-url", &cfg.PmxRegistryURL, a.pmxURL)
	override("pipewire-url", &cfg.PipewireRegistryURL, a.pipewireURL)
	override("port-source", &cfg.PortSource, a.portSource)
	override("log-level", &cfg.LogLevel, a.logLevel)
	override("log-format", &cfg.LogFormat, a.logFormat)
	override("log-file", &cfg.LogFile, a.logFile)
	override("metrics-addr", &cfg.MetricsAddr, a.metricsAddr)
	if flags.Changed("retry-max") {
		cfg.RetryMax = a.retryMax
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// The terminal UI owns the screen, so its logs only go to a file.
	interactive := cmd == cmd.Root() || cmd.Name() == "tui"
	w, closer, err := logWriter(cfg.LogFile, interactive)
	if err != nil {
		return err
	}
	a.logOut = closer
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: w})
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	return a.closeLog()
}

func (a *app) closeLog() error {
	if a.logOut == nil {
		return nil
	}
	err := a.logOut.Close()
	a.logOut = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// logWriter picks the log destination. The closer is set only for a file
// opened here.
func logWriter(path string, interactive bool) (io.Writer, io.Closer, error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, f, nil
	}
	if interactive {
		return io.Discard, nil, nil
	}
	return os.Stderr, nil, nil
}
