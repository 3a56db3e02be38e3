package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	byAccount bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open holdings valued at current prices" }
func (*holdingsCmd) Usage() string {
	return `folio holdings [-by-account]

  Displays the open holdings with their average cost, current value, gain and allocation.
  Holdings without a price are listed but excluded from the totals.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.byAccount, "by-account", false, "Value each account separately")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := load()
	if err != nil {
		printError("loading portfolio", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	if c.byAccount {
		accounts := folio.ValueAccounts(s.txs, s.prices, s.valuation())
		err = report(*outputFormat, "Holdings by Account", accounts,
			func() string { return renderer.AccountsMarkdown(accounts) },
			func() []renderer.Table {
				var tables []renderer.Table
				for _, a := range accounts {
					t := renderer.HoldingsTable(a.Summary)
					t.Title = a.AccountID
					tables = append(tables, t)
				}
				return tables
			})
	} else {
		summary := s.summary()
		err = report(*outputFormat, "Holdings", summary.Holdings,
			func() string { return renderer.HoldingsMarkdown(summary) },
			func() []renderer.Table { return []renderer.Table{renderer.HoldingsTable(summary)} })
	}
	if err != nil {
		printError("printing holdings", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
