package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// HoldingsTable lists the valued holdings of a summary.
func HoldingsTable(s folio.Summary) Table {
	t := Table{
		Title:  "Holdings",
		Header: []string{"Symbol", "Type", "Quantity", "Avg Cost", "Price", "Value", "Cost Basis", "Gain", "Gain %", "Day", "Allocation"},
		Align:  []Align{Left, Left, Right, Right, Right, Right, Right, Right, Right, Right, Right},
	}
	for _, p := range s.Holdings {
		if !p.PriceAvailable {
			t.append(p.Symbol, p.AssetType.String(), quantity(p.Quantity), money(p.AvgCost, p.Currency),
				na, na, money(p.CostBasis, s.Currency), na, na, na, na)
			continue
		}
		t.append(
			p.Symbol,
			p.AssetType.String(),
			quantity(p.Quantity),
			money(p.AvgCost, p.Currency),
			money(p.Price, s.Currency),
			money(p.CurrentValue, s.Currency),
			money(p.CostBasis, s.Currency),
			signedMoney(p.Gain, s.Currency),
			signedPct(p.GainPercent),
			signedMoney(p.DayChange, s.Currency),
			pct(p.Allocation),
		)
	}
	return t
}

// unpricedNote warns about holdings left out of the totals.
func unpricedNote(s folio.Summary) string {
	if s.Complete() {
		return ""
	}
	keys := make([]string, len(s.Unpriced))
	for i, k := range s.Unpriced {
		keys[i] = k.String()
	}
	return fmt.Sprintf("> Price unavailable for %s (cost %s), excluded from the totals.",
		strings.Join(keys, ", "), money(s.UnpricedCost, s.Currency))
}

// HoldingsMarkdown renders the holdings of a summary.
func HoldingsMarkdown(s folio.Summary) string {
	return Markdown("Holdings", unpricedNote(s), withoutTitle(HoldingsTable(s)))
}

// AccountsMarkdown renders the holdings of each account.
func AccountsMarkdown(accounts []folio.AccountSummary) string {
	var tables []Table
	for _, a := range accounts {
		t := HoldingsTable(a.Summary)
		name := a.AccountID
		if name == "" {
			name = "(no account)"
		}
		t.Title = fmt.Sprintf("%s: %s", name, money(a.Summary.TotalValue, a.Summary.Currency))
		tables = append(tables, t)
	}
	return Markdown("Holdings by Account", "", tables...)
}

func withoutTitle(t Table) Table {
	t.Title = ""
	return t
}
