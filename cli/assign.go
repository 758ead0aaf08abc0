package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/d1nch8g/pmxout/assign"
	"github.com/d1nch8g/pmxout/engine"
)

type assignFlags struct {
	output     uint32
	left       string
	right      string
	clearLeft  bool
	clearRight bool
	timeout    time.Duration
}

// edits returns the selections to apply, left first.
func (f assignFlags) edits(cmd *cobra.Command) ([]edit, error) {
	if f.clearLeft && cmd.Flags().Changed("left") {
		return nil, errors.New("--left and --clear-left are mutually exclusive")
	}
	if f.clearRight && cmd.Flags().Changed("right") {
		return nil, errors.New("--right and --clear-right are mutually exclusive")
	}

	var out []edit
	switch {
	case f.clearLeft:
		out = append(out, edit{assign.SideLeft, ""})
	case cmd.Flags().Changed("left"):
		out = append(out, edit{assign.SideLeft, f.left})
	}
	switch {
	case f.clearRight:
		out = append(out, edit{assign.SideRight, ""})
	case cmd.Flags().Changed("right"):
		out = append(out, edit{assign.SideRight, f.right})
	}
	if len(out) == 0 {
		return nil, errors.New("nothing to assign: use --left, --right, --clear-left or --clear-right")
	}
	return out, nil
}

type edit struct {
	side assign.Side
	path string
}

func (a *app) assignCmd() *cobra.Command {
	var f assignFlags
	cmd := &cobra.Command{
		Use:   "assign --output ID [--left PORT] [--right PORT]",
		Short: "Set the source ports of one output and wait until the registry confirms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			edits, err := f.edits(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
			defer cancel()

			notify, events := eventSink()
			s, err := a.startSession(ctx, notify)
			if err != nil {
				return err
			}
			defer s.close()

			snap, err := waitLoaded(ctx, events)
			if err != nil {
				return err
			}
			id := assign.OutputID(f.output)
			var want assign.MixerOutputState
			for _, e := range edits {
				if e.path != "" && !slices.Contains(snap.Catalog.In, e.path) {
					return fmt.Errorf("%s is not an input port", e.path)
				}
				if want, err = s.ctl.Select(ctx, id, e.side, e.path); err != nil {
					return err
				}
			}

			state, err := waitSynced(ctx, events, id, want.Selection())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: left=%s right=%s\n", state.Name, orNone(state.Left), orNone(state.Right))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.Uint32Var(&f.output, "output", 0, "output id")
	fl.StringVar(&f.left, "left", "", "left source port path")
	fl.StringVar(&f.right, "right", "", "right source port path")
	fl.BoolVar(&f.clearLeft, "clear-left", false, "unassign the left source")
	fl.BoolVar(&f.clearRight, "clear-right", false, "unassign the right source")
	fl.DurationVar(&f.timeout, "timeout", 30*time.Second, "give up after this long")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// waitSynced blocks until the registry confirmed want for output id, or a
// commit for it failed for good.
func waitSynced(ctx context.Context, events <-chan engine.Event, id assign.OutputID, want assign.Selection) (assign.MixerOutputState, error) {
	for {
		select {
		case <-ctx.Done():
			return assign.MixerOutputState{}, ctx.Err()
		case ev := <-events:
			if ev.Kind == engine.EventCommitFailed && ev.ID == id {
				return assign.MixerOutputState{}, ev.Err
			}
			if ev.Kind != engine.EventCommitted {
				continue
			}
			o, ok := ev.Snapshot.Output(id)
			if ok && o.Status == assign.StatusSynced && o.Persisted() == want {
				return o, nil
			}
		}
	}
}
