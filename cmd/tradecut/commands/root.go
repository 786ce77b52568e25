package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tradecut/internal/network"
)

var envFile string

func Execute() error {
	root := &cobra.Command{
		Use:           "tradecut",
		Short:         "Solve barter networks with a quantum annealer",
		Long:          "tradecut encodes a barter network as a max-cut QUBO and submits it to a remote quantum annealing service to decide who should trade and who should keep.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file with DWAVE_TOKEN / DWAVE_ENDPOINT / DWAVE_SOLVER")

	root.AddCommand(solveCmd(), quboCmd(), solversCmd())
	return root.Execute()
}

// loadNetwork reads the desires file named by args, or returns the built-in
// demonstration network when none is given.
func loadNetwork(args []string) (*network.Network, error) {
	if len(args) == 0 {
		return network.Example(), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return network.Parse(f)
}
