package main

import (
	"os"

	"github.com/ashmarin/hh-market-stats/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
