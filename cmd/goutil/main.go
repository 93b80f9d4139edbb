package main

import (
	"os"

	"github.com/schotanus/goutil/cmd/goutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
