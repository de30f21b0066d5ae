// Package main provides the kmath CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "kmath %s\n", version)
		return 0
	case "bench":
		if err := bench(args[1:], stdout); err != nil {
			fmt.Fprintf(stderr, "kmath bench: %v\n", err)
			return 1
		}
		return 0
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "kmath: unknown command %q\n", args[0])
		usage(stderr)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "kmath - n-dimensional structures and algebra for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  bench      Time structure access and algebra contexts")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'kmath bench -h' for benchmark flags.")
}
