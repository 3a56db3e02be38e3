package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	symbol string
	all    bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display FIFO tax lots and gains by holding period" }
func (*lotsCmd) Usage() string {
	return `folio lots [-symbol <symbol>[/<type>]] [-all]

  Replays the transactions first in, first out and displays the unsold
  remainder of each purchase, with its gain and holding period (long term
  after 365.25 days). Lots are valued in the holding currency.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only this holding, e.g. AAPL or BTC/crypto")
	f.BoolVar(&c.all, "all", false, "Include closed holdings, to see their realized gains")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := load()
	if err != nil {
		printError("loading portfolio", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	keys, err := s.keys(c.symbol)
	if err != nil {
		printError("selecting holding", err)
		return subcommands.ExitUsageError
	}

	var reports []folio.LotReport
	for _, key := range keys {
		r := folio.TaxLots(s.txs, key, s.prices, s.now, s.days)
		if len(r.Lots) == 0 && !c.all && c.symbol == "" {
			continue
		}
		reports = append(reports, r)
	}

	err = report(*outputFormat, "Tax Lots", reports,
		func() string { return renderer.LotsMarkdown(reports) },
		func() []renderer.Table {
			var tables []renderer.Table
			for _, r := range reports {
				tables = append(tables, renderer.LotsTable(r))
			}
			return append(tables, renderer.GainsTable(reports))
		})
	if err != nil {
		printError("printing lots", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
