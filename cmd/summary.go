package cmd

import (
	"context"
	"flag"
	"strconv"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	override string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals and holdings" }
func (*summaryCmd) Usage() string {
	return `folio summary [-override <amount>]

  Displays the total value, cost, gain and day change of the portfolio.

  The total cost can be overridden, in the reporting currency, to correct
  the calculated cost basis (e.g. for transfers in from another broker).
  The override only changes the totals, not the holdings nor the lots.
  Use -override=none to ignore an override set in the configuration.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.override, "override", "", "Total cost basis override, or none")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := load()
	if err != nil {
		printError("loading portfolio", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	switch c.override {
	case "":
	case "none":
		s.cfg.CostBasisOverride = nil
	default:
		v, err := strconv.ParseFloat(c.override, 64)
		if err != nil {
			printError("parsing -override", err)
			return subcommands.ExitUsageError
		}
		s.cfg.CostBasisOverride = &v
	}

	summary := s.summary()
	err = report(*outputFormat, "Portfolio Summary", summary,
		func() string { return renderer.SummaryMarkdown(summary) },
		func() []renderer.Table {
			return []renderer.Table{renderer.SummaryTable(summary), renderer.HoldingsTable(summary)}
		})
	if err != nil {
		printError("printing summary", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
