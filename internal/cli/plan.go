package cli

import (
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobar/internal/engine"
)

// NewPlanCommand creates the plan command, a dry run that prints the pump
// schedule without touching any hardware.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "plan <recipe>",
		Short: "Show the pump schedule for a recipe without pouring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkQuantity(quantity); err != nil {
				return err
			}

			a, err := newApp(rootOpts, "")
			if err != nil {
				return err
			}
			defer a.close()

			// Plan never touches the bank.
			eng := engine.New(a.recipes, nil, a.store, a.log)
			job, err := eng.Plan(cmd.Context(), a.recipes.CanonicalName(args[0]), quantity)
			if err != nil {
				return err
			}
			return engine.RenderPlan(cmd.OutOrStdout(), job)
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "number of drinks (1-10)")
	return cmd
}
