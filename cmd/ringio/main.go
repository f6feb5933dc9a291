// Package main is the entry point for the ringio demo CLI.
//
// Usage:
//
//	ringio [flags] <command> [args]
//
// Commands:
//
//	pump    - Copy a byte stream through a buffered reader/writer pair
//	frames  - Decode length-prefixed or delimiter-separated frames
//	ws      - Stream a websocket's binary messages to stdout
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/ringio/cmd/ringio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
