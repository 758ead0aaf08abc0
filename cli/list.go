package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/d1nch8g/pmxout/engine"
)

func (a *app) listCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print outputs, their assignments and the port catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
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
			printSnapshot(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	return cmd
}

func printSnapshot(w io.Writer, snap engine.Snapshot) {
	outputs := table.New().Headers("ID", "OUTPUT", "LEFT", "RIGHT")
	for _, o := range snap.Outputs {
		outputs.Row(fmt.Sprint(o.ID), o.Name, orNone(o.Left), orNone(o.Right))
	}
	fmt.Fprintln(w, outputs.Render())

	fmt.Fprintln(w, "input ports:")
	for _, p := range snap.Catalog.In {
		fmt.Fprintln(w, "  "+p)
	}
	fmt.Fprintln(w, "output ports:")
	for _, p := range snap.Catalog.Out {
		fmt.Fprintln(w, "  "+p)
	}
}

func orNone(path string) string {
	if path == "" {
		return "-"
	}
	return path
}
