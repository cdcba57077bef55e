// Package cmd implements the CLI application to inspect and edit estimates.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estimate"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "report")
	c.Register(&totalCmd{}, "report")

	c.Register(&setCmd{}, "edit")

	c.Register(&fetchCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var estimateFile = flag.String("estimate-file", "estimate.json", "Path to the estimate document (JSON)")
var currencyCode = flag.String("currency", "USD", "ISO 4217 currency code used to format totals")

// loadSections decodes and normalizes the estimate document at path.
func loadSections(path string) ([]estimate.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open estimate document %q: %w", path, err)
	}
	defer f.Close()
	return estimate.DecodeEstimate(f)
}

// noData prints the distinct valid-but-empty notice: zero sections is not an
// error, but there is nothing to total either.
func noData() {
	fmt.Println("No estimate data.")
}
