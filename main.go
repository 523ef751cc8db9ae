// Package main is the entry point for bracecheck.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zorak1103/bracecheck/cmd"
)

func main() {
	// Exit code semantics: 0 = file loaded and result printed (with --strict: only when balanced).
	// 1 = usage error (bad flags/args, no FILE), config or load error, --strict fault, or panic.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ PANIC: %v\n", r)
			fmt.Fprintf(os.Stderr, "\nStack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
