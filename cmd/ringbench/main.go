// Package main is the entry point for the ringbench CLI.
//
// Usage:
//
//	ringbench [flags] <command> [args]
//
// Commands:
//
//	bench      - Run append/drain benchmarks over the ring engine
//	pipe       - Copy stdin to stdout through a ring-backed pipe
//	tail       - Keep and print the last N lines of stdin
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/CasualX/ringbuf/cmd/ringbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
