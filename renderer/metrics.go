package renderer

import (
	"fmt"

	"github.com/etnz/folio"
)

// MetricsTables renders the performance, allocation and DCA tables.
func MetricsTables(m folio.Metrics, currency string) []Table {
	perf := Table{
		Title:  "Performance",
		Header: []string{"Metric", "Value"},
		Align:  []Align{Left, Right},
	}
	perf.append("Total Return", signedPct(m.TotalReturn))
	perf.append("Years Invested", fmt.Sprintf("%.2f", m.YearsInvested))
	perf.append("CAGR", signedPct(m.CAGR))
	perf.append("Estimated Volatility", pct(m.EstimatedVolatility))
	perf.append("Risk Free Rate", pct(m.RiskFreeRate))
	perf.append("Sharpe Ratio", fmt.Sprintf("%.2f", m.SharpeRatio))

	alloc := Table{
		Title:  "Allocation",
		Header: []string{"Asset Type", "Value", "Share"},
		Align:  []Align{Left, Right, Right},
	}
	for _, a := range m.Allocation {
		alloc.append(a.Category, money(a.Value, currency), pct(a.Percent))
	}

	dca := Table{
		Title:  "Dollar Cost Averaging",
		Header: []string{"Holding", "Buys", "Avg Cost", "First Price", "Value", "Lump Sum Value", "Advantage"},
		Align:  []Align{Left, Right, Right, Right, Right, Right, Right},
	}
	for _, d := range m.DCA {
		r := d.Result
		dca.append(
			d.Key.String(),
			fmt.Sprint(r.Buys),
			money(r.AverageCost, currency),
			money(r.FirstPrice, currency),
			money(r.Value, currency),
			money(r.LumpSumValue, currency),
			fmt.Sprintf("%s (%s)", signedMoney(r.Advantage, currency), signedPct(r.AdvantagePercent)),
		)
	}
	return []Table{perf, alloc, dca}
}

// MetricsMarkdown renders the portfolio metrics.
func MetricsMarkdown(m folio.Metrics, currency string) string {
	intro := "Volatility is estimated from the day change of the holdings, not from a history of returns."
	return Markdown("Portfolio Metrics", intro, MetricsTables(m, currency)...)
}
