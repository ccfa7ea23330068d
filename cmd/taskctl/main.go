// Package main is the taskctl command: a local client for the task list. It
// builds the same store, persistence hook and suggestion client as the
// server, so both read and write the configured storage backend.
package main

import (
	"fmt"
	"os"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
