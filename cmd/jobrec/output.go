package main

import (
	"fmt"
	"os"
)

// ── Output helpers ────────────────────────────────────────────────────────────
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== Health ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func printOK(name, msg string) {
	printLine(os.Stdout, "✓", name, msg)
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	printLine(os.Stderr, "✗", name, msg)
}

func printWarn(name, msg string) {
	printLine(os.Stdout, "⚠", name, msg)
}

func printInfo(name, msg string) {
	printLine(os.Stdout, "~", name, msg)
}

//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printLine(out *os.File, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(out, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(out, "  %s  [%s] %s\n", icon, name, msg)
	}
}
