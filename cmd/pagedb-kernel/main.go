package main

import (
	"fmt"
	"os"

	"pagedb/cmd/pagedb-kernel/cli"
)

// Version information set by build flags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, BuildTime)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
