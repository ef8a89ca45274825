package main

import (
	"os"

	"github.com/lingobee/lingobee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
