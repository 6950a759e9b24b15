package main

import (
	"os"

	"github.com/nebulahq/chainpulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
