// ottobar pours drinks from a bank of pump relays.
//
// Usage:
//
//	ottobar [run|order|plan|recipes|validate] [flags]
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"

	"github.com/hammamikhairi/ottobar/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		// atexit runs the registered all-off handlers before exiting.
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
