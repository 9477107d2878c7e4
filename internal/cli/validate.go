package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobar/internal/recipe"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog]",
		Short: "Check a recipe catalog against the schema and the configured pumps",
		Long: `Validate a JSON or YAML recipe catalog. Checks the catalog schema,
rejects non-positive volumes, and reports every ingredient whose pump
index is not one of the configured lines. Without an argument the
configured catalog (or the built-in recipes) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			a, err := newApp(rootOpts, path)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			all, err := a.recipes.List(ctx)
			if err != nil {
				return err
			}
			problems, err := recipe.CheckActuators(ctx, a.recipes, len(a.cfg.Lines))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintf(out, "  %v\n", p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("catalog has %d problem(s)", len(problems))
			}
			fmt.Fprintf(out, "ok: %d recipes fit %d pumps\n", len(all), len(a.cfg.Lines))
			return nil
		},
	}
}
