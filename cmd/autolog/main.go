package main

import (
	"os"

	"github.com/raveheart1/autolog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
