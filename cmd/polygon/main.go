// Command polygon prints a description of every polygon in the built-in catalog.
package main

import (
	"context"
	"os"

	"github.com/roach88/polygon/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
