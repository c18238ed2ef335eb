// Package main provides a CLI that prints reference output streams of the
// mtrand generators.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llehouerou/go-mtrand/internal/tools/vectors"
)

func main() {
	cfg, err := vectors.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("parse config: %v", err)
	}
	if err := vectors.Run(cfg, os.Stdout); err != nil {
		exitf("generate vectors: %v", err)
	}
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
