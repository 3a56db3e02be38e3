package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// changeCmd holds the flags for the 'change' subcommand.
type changeCmd struct {
	symbol  string
	rangeID string
}

func (*changeCmd) Name() string     { return "change" }
func (*changeCmd) Synopsis() string { return "display the price change of a holding over time ranges" }
func (*changeCmd) Usage() string {
	return `folio change -symbol <symbol>[/<type>] [-range <range>]

  Displays the price change of a holding over 1H, 1D, 1W, 1M, YTD, 1Y and
  ALL, from the history of the quote file. Use -range to select only one.
`
}

func (c *changeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Holding, e.g. AAPL or BTC/crypto")
	f.StringVar(&c.rangeID, "range", "", "Only this range (1H, 1D, 1W, 1M, YTD, 1Y, ALL)")
}

func (c *changeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(f.Output(), "-symbol is required")
		return subcommands.ExitUsageError
	}
	var ranges []folio.Range
	if c.rangeID != "" {
		r, err := folio.ParseRange(c.rangeID)
		if err != nil {
			printError("parsing -range", err)
			return subcommands.ExitUsageError
		}
		ranges = append(ranges, r)
	} else {
		for r := range folio.Ranges() {
			ranges = append(ranges, r)
		}
	}

	s, err := load()
	if err != nil {
		printError("loading portfolio", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	key, err := folio.ParseKey(c.symbol)
	if err != nil {
		printError("parsing -symbol", err)
		return subcommands.ExitUsageError
	}

	var history []folio.PricePoint
	if s.history != nil {
		history = append(history, s.history.History(key)...)
	}
	currency := folio.DefaultCurrency
	if own := folio.ForKey(s.txs, key); len(own) > 0 {
		currency = own[0].CurrencyOrDefault()
	}
	if q, ok := s.prices.Quote(key.Symbol, key.AssetType); ok {
		history = append(history, folio.PricePoint{Time: s.now, Price: q.Price})
		if q.Currency != "" {
			currency = q.Currency
		}
	}

	changes := make([]folio.Change, 0, len(ranges))
	for _, r := range ranges {
		changes = append(changes, folio.PeriodChange(history, r, s.now))
	}
	err = report(*outputFormat, "Price Change", changes,
		func() string { return renderer.ChangeMarkdown(key, currency, changes) },
		func() []renderer.Table { return []renderer.Table{renderer.ChangeTable(key, currency, changes)} })
	if err != nil {
		printError("printing changes", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
