package main

import (
	"os"

	"github.com/dalemusser/penguinpathways/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
