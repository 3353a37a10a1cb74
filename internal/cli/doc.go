// Package cli implements the polygon command line.
//
// The root command describes the built-in polygon catalog. It takes no
// meaningful arguments: positional arguments and unknown flags are ignored.
// Output is text by default or a single JSON response with --format json.
// Diagnostic logging goes to stderr and is silent unless --verbose is set.
package cli
