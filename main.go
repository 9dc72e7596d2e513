package main

import (
	"os"

	"github.com/adesai/careerlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
