package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estimate"
	"github.com/google/subcommands"
)

// totalCmd holds the flags for the 'total' subcommand.
type totalCmd struct {
	raw bool
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print section subtotals and the grand total" }
func (*totalCmd) Usage() string {
	return `est total [-raw]

  Prints one line per section with its subtotal, then the grand total.
  With -raw, amounts are printed as plain numbers instead of formatted
  currency, for scripting.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain numbers instead of formatted currency")
}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sections, err := loadSections(*estimateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(sections) == 0 {
		noData()
		return subcommands.ExitSuccess
	}

	for _, s := range sections {
		fmt.Printf("%-10s %-30s %s\n", s.ID, s.Name, c.amount(estimate.SectionSubtotal(s)))
	}
	fmt.Printf("%-10s %-30s %s\n", "", "Grand Total", c.amount(estimate.GrandTotal(sections)))
	return subcommands.ExitSuccess
}

func (c *totalCmd) amount(v float64) string {
	if c.raw {
		return fmt.Sprintf("%v", v)
	}
	return estimate.M(v, *currencyCode).String()
}
