package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/d1nch8g/pmxout/engine"
	"github.com/d1nch8g/pmxout/ui"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit output assignments interactively (default)",
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var p *tea.Program
	ready := make(chan struct{})
	notify := func(ev engine.Event) {
		<-ready
		p.Send(ui.EventMsg(ev))
	}

	s, err := a.startSession(ctx, notify)
	if err != nil {
		return err
	}
	defer s.close()

	p = tea.NewProgram(ui.NewModel(ctx, s.ctl), tea.WithAltScreen(), tea.WithContext(ctx))
	close(ready)
	_, err = p.Run()
	cancel()
	return err
}
