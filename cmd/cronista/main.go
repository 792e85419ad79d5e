package main

import (
	"os"

	"github.com/b-rodrigues/cronista/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
