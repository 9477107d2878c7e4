package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobar/internal/display"
	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/notify"
	"github.com/hammamikhairi/ottobar/internal/timer"
)

// NewOrderCommand creates the order command, a headless blocking pour.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "order <recipe>",
		Short: "Pour a recipe and wait until every pump is off",
		Long: `Pour a recipe without the terminal UI. Blocks until the last pump is
off. Progress is printed while the pumps run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, rootOpts, args[0], quantity)
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "number of drinks (1-10)")
	return cmd
}

func runOrder(cmd *cobra.Command, opts *RootOptions, name string, quantity int) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}

	a, err := newApp(opts, "")
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.openBank(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	notifier := notify.NewCLINotifier(a.log, linePrinter(out))
	eng := a.newEngine(notifier)

	ctx := cmd.Context()
	watcher := timer.New(a.store, notifier, a.log, timer.WithInterval(a.cfg.ProgressInterval))
	watcher.Start(ctx)
	job, err := eng.PlaceOrder(ctx, a.recipes.CanonicalName(name), quantity)
	watcher.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "job %s finished in %s\n", job.ID, job.CompletedAt.Sub(job.StartedAt).Round(10*time.Millisecond))
	return nil
}

// checkQuantity applies the menu's quantity range to the command line.
func checkQuantity(n int) error {
	if n < display.MinQuantity || n > display.MaxQuantity {
		return fmt.Errorf("quantity %d outside %d-%d: %w", n, display.MinQuantity, display.MaxQuantity, domain.ErrInvalidQuantity)
	}
	return nil
}

// linePrinter prints each message to w on its own line.
func linePrinter(w io.Writer) notify.PrintFunc {
	return func(format string, a ...interface{}) {
		fmt.Fprintf(w, format+"\n", a...)
	}
}
