package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	riskFree float64
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display performance and risk metrics" }
func (*metricsCmd) Usage() string {
	return `folio metrics [-risk-free <percent>]

  Displays the CAGR, the estimated volatility, the Sharpe ratio, the
  allocation by asset type and the effectiveness of dollar cost averaging.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.riskFree, "risk-free", -1, "Risk free rate in percent (default from the configuration)")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := load()
	if err != nil {
		printError("loading portfolio", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	rate := s.cfg.RiskFreeRate
	if c.riskFree >= 0 {
		rate = c.riskFree
	}
	summary := s.summary()
	m := folio.NewMetrics(summary, s.txs, folio.MetricsOptions{RiskFreeRate: rate, Now: s.now})

	err = report(*outputFormat, "Portfolio Metrics", m,
		func() string { return renderer.MetricsMarkdown(m, summary.Currency) },
		func() []renderer.Table { return renderer.MetricsTables(m, summary.Currency) })
	if err != nil {
		printError("printing metrics", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
