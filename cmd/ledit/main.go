package main

import (
	"fmt"
	"os"

	"github.com/mstrebkov/ledit/internal/editor"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if err := editor.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, "ledit:", err)
		os.Exit(1)
	}
}
