package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradecut/internal/qubo"
)

// qubo [desires-file]: build and print the QUBO without solving. Needs no
// credentials.
func quboCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "qubo [desires-file]",
		Short: "Print the max-cut QUBO for a trade network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := loadNetwork(args)
			if err != nil {
				return err
			}
			q := qubo.Build(net)

			if out != "" {
				if err := qubo.WriteFile(out, q); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "QUBO written to '%s'\n", out)
				return nil
			}

			b, err := qubo.Marshal(q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the QUBO JSON to this file instead of stdout")
	return cmd
}
