package main

import (
	"os"

	"tradecut/cmd/tradecut/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
