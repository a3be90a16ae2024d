package main

import (
	"os"

	"github.com/rustyeddy/binopt/cmd/binopt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
