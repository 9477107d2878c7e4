package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobar/internal/domain"
)

// NewRecipesCommand creates the recipes command, which lists or searches
// the catalog.
func NewRecipesCommand(rootOpts *RootOptions) *cobra.Command {
	var showIngredients bool

	cmd := &cobra.Command{
		Use:   "recipes [query]",
		Short: "List recipes, or search them by name or ingredient",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, "")
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			var found []domain.RecipeSummary
			if len(args) == 1 {
				found, err = a.recipes.Search(ctx, args[0])
			} else {
				found, err = a.recipes.List(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, "no recipes found")
				return nil
			}
			return printRecipes(ctx, out, a.recipes, found, showIngredients)
		},
	}

	cmd.Flags().BoolVarP(&showIngredients, "ingredients", "i", false, "list each recipe's ingredients")
	return cmd
}

func printRecipes(ctx context.Context, w io.Writer, src domain.RecipeSource, found []domain.RecipeSummary, detail bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tINGREDIENTS\tTOTAL")
	for _, s := range found {
		fmt.Fprintf(tw, "%s\t%d\t%g ml\n", s.Name, s.Ingredients, s.TotalML)
		if !detail {
			continue
		}
		r, err := src.Get(ctx, s.Name)
		if err != nil {
			return err
		}
		for _, ing := range r.Ingredients {
			fmt.Fprintf(tw, "  pump %d\t%s\t%g ml\n", ing.Actuator, ing.Name, ing.VolumeML)
		}
	}
	return tw.Flush()
}
