package main

import (
	"os"

	"github.com/Zachkp/portfolio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
