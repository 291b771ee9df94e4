package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dircensus/internal/cli"
)

// version is set at build time with -ldflags.
var version = "dev" //nolint:gochecknoglobals // Build-time variable

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dircensus: %v\n", err)
		os.Exit(1)
	}
}
