package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobar/internal/display"
	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/engine"
	"github.com/hammamikhairi/ottobar/internal/notify"
)

// NewRunCommand creates the run command, which starts the terminal UI.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bar menu in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, rootOpts)
		},
	}
}

func runUI(cmd *cobra.Command, opts *RootOptions) error {
	a, err := newApp(opts, "")
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.openBank(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	menu, err := a.recipes.List(ctx)
	if err != nil {
		return fmt.Errorf("listing recipes: %w", err)
	}

	// The UI needs the engine to order and the engine needs the UI to
	// print, so the UI gets a forwarding orderer.
	var eng *engine.Engine
	ui := display.NewUI(display.Deps{
		Orderer: display.OrderFunc(func(ctx context.Context, name string, qty int) (*domain.Job, error) {
			return eng.PlaceOrder(ctx, name, qty)
		}),
		Pumps:   a.bank,
		Store:   a.store,
		Recipes: menu,
	})
	eng = a.newEngine(notify.NewCLINotifier(a.log, ui.Printf))

	subtitle := fmt.Sprintf("%d recipes, %d pumps (%s)", len(menu), a.bank.Size(), a.cfg.Driver)
	fmt.Fprint(cmd.OutOrStdout(), display.RenderBanner(subtitle, 0))

	a.log.Info("terminal UI started")
	return ui.Run(ctx)
}
