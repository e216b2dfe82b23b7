package main

import (
	"os"

	"github.com/abhisek/cpe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
