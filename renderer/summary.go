package renderer

import (
	"github.com/etnz/folio"
)

// SummaryTable lists the totals of a summary.
func SummaryTable(s folio.Summary) Table {
	t := Table{
		Title:  "Totals",
		Header: []string{"Metric", "Value"},
		Align:  []Align{Left, Right},
	}
	cost := "Total Cost"
	if s.CostOverridden {
		cost = "Total Cost (override)"
	}
	t.append("Total Value", money(s.TotalValue, s.Currency))
	t.append(cost, money(s.TotalCost, s.Currency))
	if s.CostOverridden {
		t.append("Calculated Cost", money(s.CalculatedCost, s.Currency))
	}
	t.append("Total Gain", signedMoney(s.TotalGain, s.Currency))
	t.append("Total Gain %", signedPct(s.TotalGainPercent))
	t.append("Day Change", signedMoney(s.DayChange, s.Currency))
	t.append("Day Change %", signedPct(s.DayChangePercent))
	if !s.Complete() {
		t.append("Unpriced Cost", money(s.UnpricedCost, s.Currency))
	}
	return t
}

// SummaryMarkdown renders the portfolio summary, totals first.
func SummaryMarkdown(s folio.Summary) string {
	return Markdown("Portfolio Summary", unpricedNote(s), SummaryTable(s), HoldingsTable(s))
}
