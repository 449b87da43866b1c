package main

import (
	"os"

	"github.com/frankdc/hogview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
