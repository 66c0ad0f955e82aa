// Command mw is the mw2parquet CLI entrypoint. All logic lives in
// internal/cli; main only wires panic recovery and the process exit code.
package main

import (
	"fmt"
	"os"

	"github.com/mediawiki2parquet/mw2parquet/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", r)
			os.Exit(1)
		}
	}()

	rootCmd := cli.BuildCLI()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
