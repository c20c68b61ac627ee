// minigrep - print the lines of a file that contain a query.
//
// Usage:
//
//	minigrep <query> <file_path>
//
// Set CASE_INSENSITIVE to any value to ignore case.
package main

import (
	"os"

	"github.com/ccollicutt/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
