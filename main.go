package main

import (
	"os"

	"github.com/theptrk/ortools-scheduling/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
