package main

import (
	"fmt"
	"os"

	"github.com/teolivas/tablero/cmd"
	"github.com/teolivas/tablero/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
