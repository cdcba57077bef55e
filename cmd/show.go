package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estimate"
	"github.com/etnz/estimate/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	url      string
	fallback string
	title    string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the estimate with per-section and grand totals" }
func (*showCmd) Usage() string {
	return `est show [-url <address> [-fallback <address>]]

  Loads the estimate document (from -estimate-file, or over HTTP when -url is
  given), normalizes it and renders sections, items and totals.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Primary address of the estimate document. Overrides -estimate-file.")
	f.StringVar(&c.fallback, "fallback", "", "Fallback address, tried when the primary one fails.")
	f.StringVar(&c.title, "title", "Estimate", "Title of the report.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sections, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(sections) == 0 {
		noData()
		return subcommands.ExitSuccess
	}

	view := renderer.NewEstimate(c.title, sections, *currencyCode)
	printMarkdown(renderer.EstimateMarkdown(view))
	return subcommands.ExitSuccess
}

func (c *showCmd) load() ([]estimate.Section, error) {
	if c.url != "" {
		return estimate.Fetch(estimate.Cached(), c.url, c.fallback)
	}
	return loadSections(*estimateFile)
}
