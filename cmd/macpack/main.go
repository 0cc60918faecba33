package main

import (
	"os"

	"github.com/macreleaser/macpack/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
