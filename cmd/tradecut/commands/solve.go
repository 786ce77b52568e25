package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradecut/internal/app"
	"tradecut/internal/solution"
)

// solve [desires-file]: run the full pipeline and render the result.
func solveCmd() *cobra.Command {
	var (
		numReads int
		image    string
		noImage  bool
	)

	cmd := &cobra.Command{
		Use:   "solve [desires-file]",
		Short: "Solve a trade network on the annealing service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Credentials first; a missing token aborts before any
			// graph work.
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			wired := app.Wire(cfg)

			net, err := loadNetwork(args)
			if err != nil {
				return err
			}

			sol, err := wired.Solver.Solve(cmd.Context(), net, numReads)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			solution.WriteReport(out, net.Nodes(), sol)

			if noImage {
				return nil
			}
			if err := wired.Renderer.Render(net.Edges(), sol, image); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nVisualization saved as '%s'\n", image)
			return nil
		},
	}

	cmd.Flags().IntVar(&numReads, "reads", 1000, "number of annealing reads")
	cmd.Flags().StringVar(&image, "image", "trade_network_solution.png", "path of the rendered image")
	cmd.Flags().BoolVar(&noImage, "no-image", false, "skip rendering the image")
	return cmd
}
