package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estimate"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	url      string
	fallback string
	output   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "retrieve an estimate document and save it unchanged" }
func (*fetchCmd) Usage() string {
	return `est fetch -url <address> [-fallback <address>] [-o <file>]

  Retrieves the estimate document and writes it to stdout or to -o exactly as
  the producer served it. Loading the saved copy with -estimate-file yields
  the same model as loading the live document. Successful responses are
  cached on disk for the day.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Primary address of the estimate document.")
	f.StringVar(&c.fallback, "fallback", "", "Fallback address, tried when the primary one fails.")
	f.StringVar(&c.output, "o", "", "Write the document to this file instead of stdout.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required")
		return subcommands.ExitUsageError
	}

	doc, err := estimate.FetchRaw(estimate.Cached(), c.url, c.fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(doc) == 0 || doc[len(doc)-1] != '\n' {
		doc = append(doc, '\n')
	}

	if c.output == "" {
		os.Stdout.Write(doc)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, doc, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote estimate to %s\n", c.output)
	return subcommands.ExitSuccess
}
