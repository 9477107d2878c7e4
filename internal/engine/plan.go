package engine

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hammamikhairi/ottobar/internal/domain"
)

// RenderPlan writes the pump schedule of a job: one row per ingredient,
// then the start, drain and stop steps in the order they will happen.
func RenderPlan(w io.Writer, job *domain.Job) error {
	if _, err := fmt.Fprintf(w, "%s x%d\n", job.Recipe.Name, job.Quantity); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPUMP\tINGREDIENT\tVOLUME\tRUN")
	for i, a := range job.Assignments {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%g ml\t%s\n",
			i+1, a.Actuator, a.Ingredient, job.Recipe.Ingredients[i].VolumeML, a.Duration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	passes := "passes"
	if job.Quantity == 1 {
		passes = "pass"
	}
	fmt.Fprintf(w, "start: %d pumps on, %d %s\n", len(job.Assignments), job.Quantity, passes)
	fmt.Fprintf(w, "drain: %s\n", job.Longest())
	for _, a := range job.Assignments {
		fmt.Fprintf(w, "stop:  pump %d off, then %s\n", a.Actuator, a.Duration)
	}
	_, err := fmt.Fprintf(w, "total: %s\n", job.EstimatedTotal())
	return err
}
