package main

import (
	"os"

	"github.com/bnema/workout-coach-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
