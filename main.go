package main

import (
	"os"

	"github.com/misterclayt0n/ironlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
