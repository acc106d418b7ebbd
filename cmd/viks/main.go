// Package main is the entry point for the viks notation tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TundraClimate/viks/bindings"
	"github.com/TundraClimate/viks/keymap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "normalize":
		return runNormalize(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "viks: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `Usage:
  viks normalize <notation>...   print the canonical form of key sequences
  viks check <file>...           validate binding files (.toml, .yaml, .json)`)
}

// runNormalize prints the canonical spelling of each key sequence.
func runNormalize(specs []string, stdout, stderr io.Writer) int {
	if len(specs) == 0 {
		fmt.Fprintln(stderr, "viks: normalize needs at least one key sequence")
		return 2
	}

	status := 0
	for _, spec := range specs {
		m, err := keymap.Parse(spec)
		if err != nil {
			fmt.Fprintf(stderr, "viks: %q: %v\n", spec, err)
			status = 1
			continue
		}
		fmt.Fprintln(stdout, m.String())
	}
	return status
}

// runCheck loads and validates each binding file.
func runCheck(paths []string, stdout, stderr io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "viks: check needs at least one binding file")
		return 2
	}

	loader := bindings.NewLoader()
	status := 0
	for _, path := range paths {
		set, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "viks: %v\n", err)
			status = 1
			continue
		}
		if err := set.Validate(); err != nil {
			fmt.Fprintf(stderr, "viks: %s: %v\n", path, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "%s: %d bindings ok\n", path, len(set.Bindings))
	}
	return status
}
