package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	symbol string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display detailed statistics of one holding" }
func (*statsCmd) Usage() string {
	return `folio stats -symbol <symbol>[/<type>]

  Displays the detailed statistics of a holding: average buy-in, days held,
  best and worst trades, win rate, break-even price, concentration, lots and
  accounts. Values are in the holding currency.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Holding, e.g. AAPL or BTC/crypto")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(f.Output(), "-symbol is required")
		return subcommands.ExitUsageError
	}
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
	key := keys[0]

	summary := s.summary()
	// the concentration needs the portfolio value in the holding currency.
	total := 0.0
	if p, ok := summary.Position(key); ok {
		if v, ok := folio.M(summary.TotalValue, summary.Currency).Convert(folio.Rates(s.cfg.Rates), p.Currency); ok {
			total = v.Float64()
		}
	}

	stats := folio.NewAssetStats(s.txs, key, s.prices, total, folio.StatsOptions{
		Now:    s.now,
		Days:   s.days,
		Method: s.method(),
	})
	err = report(*outputFormat, key.String(), stats,
		func() string { return renderer.StatsMarkdown(stats) },
		func() []renderer.Table { return renderer.StatsTables(stats) })
	if err != nil {
		printError("printing statistics", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
