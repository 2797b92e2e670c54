package main

import (
	"os"

	"seedheader/cmd/headerc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
