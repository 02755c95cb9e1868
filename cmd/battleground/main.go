package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BrandonKowalski/battleground/cmd/battleground/cmd"
)

// SDL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
