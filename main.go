package main

import (
	"os"

	"github.com/abrar/astrolearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
