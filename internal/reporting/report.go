// Package reporting writes check results for humans.
package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/zorak1103/bracecheck/internal/balance"
	"github.com/zorak1103/bracecheck/internal/config"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	faultColor = color.New(color.FgRed, color.Bold)
	openColor  = color.New(color.FgYellow, color.Bold)
)

// Print writes the single result line for r to w.
// The text is the same with or without colour.
func Print(w io.Writer, r balance.Result, useColor bool) error {
	line := r.String()
	if useColor {
		c := colorFor(r.Kind)
		c.EnableColor()
		line = c.Sprint(line)
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func colorFor(k balance.Kind) *color.Color {
	switch k {
	case balance.Balanced:
		return okColor
	case balance.UnmatchedOpeners:
		return openColor
	default:
		return faultColor
	}
}

// ColorEnabled resolves a colour mode (auto, always, never) for writer w.
// In auto mode colour is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
