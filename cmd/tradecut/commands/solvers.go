package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradecut/internal/app"
)

// solvers: list the solvers the configured service offers.
func solversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solvers",
		Short: "List the remote annealing solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			wired := app.Wire(cfg)

			solvers, err := wired.Client.Solvers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range solvers {
				fmt.Fprintf(out, "%-24s %-8s %d qubits\n", s.ID, s.Status, s.Qubits)
			}
			return nil
		},
	}
}
