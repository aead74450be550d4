package main

import (
	"os"

	"github.com/ritankar/lakshya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
