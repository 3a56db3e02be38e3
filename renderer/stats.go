package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/folio"
)

func trade(t *folio.Trade, currency string) string {
	if t == nil {
		return na
	}
	gain := na
	if t.GainPercent != nil {
		gain = signedPct(*t.GainPercent)
	}
	return fmt.Sprintf("%s %s @ %s (%s)", day(t.Date), quantity(t.Quantity), money(t.Price, currency), gain)
}

// StatsTables renders the statistics of a single holding.
func StatsTables(s folio.AssetStats) []Table {
	c := s.Currency
	overview := Table{
		Title:  "Overview",
		Header: []string{"Metric", "Value"},
		Align:  []Align{Left, Right},
	}
	price, value, gain, concentration := na, na, na, na
	winRate, streak, patience := na, na, na
	if s.PriceAvailable {
		price = money(s.Price, c)
		value = money(s.CurrentValue, c)
		gain = fmt.Sprintf("%s (%s)", signedMoney(s.Gain, c), signedPct(s.GainPercent))
		concentration = pct(s.Concentration)
		winRate = pct(s.WinRate)
		streak = strconv.Itoa(s.Streak)
		patience = signedMoney(s.PatienceEarned, c)
	}
	breakEven := na
	if s.BreakEvenPrice != nil {
		breakEven = money(*s.BreakEvenPrice, c)
	}
	overview.append("Quantity", quantity(s.Quantity))
	overview.append("Average Buy-in", money(s.AvgBuyIn, c))
	overview.append("Price", price)
	overview.append("Value", value)
	overview.append("Cost Basis", money(s.CostBasis, c))
	overview.append("Gain", gain)
	overview.append("First Purchase", day(s.FirstPurchase))
	overview.append("Days Held", strconv.Itoa(s.DaysHeld))
	overview.append("Concentration", concentration)
	overview.append("Realized ("+s.Method+")", signedMoney(s.Realized, c))

	trades := Table{
		Title:  "Trades",
		Header: []string{"Metric", "Value"},
		Align:  []Align{Left, Right},
	}
	trades.append("Buys", strconv.Itoa(s.Buys))
	trades.append("Best Trade", trade(s.BestTrade, c))
	trades.append("Worst Trade", trade(s.WorstTrade, c))
	trades.append("Largest Purchase", trade(s.LargestPurchase, c))
	trades.append("Win Rate", winRate)
	trades.append("Streak", streak)
	trades.append("Patience Earned", patience)
	trades.append("Break-even Price", breakEven)
	trades.append("Price to Double", money(s.PriceToDouble, c))

	accounts := Table{
		Title:  "Accounts",
		Header: []string{"Account", "Quantity", "Avg Cost", "Value", "Gain"},
		Align:  []Align{Left, Right, Right, Right, Right},
	}
	for _, a := range s.Accounts {
		accounts.append(a.AccountID, quantity(a.Quantity), money(a.AvgCost, c), money(a.CurrentValue, c), signedMoney(a.Gain, c))
	}

	lots := LotsTable(s.Lots)
	lots.Title = "Tax Lots"
	return []Table{overview, trades, accounts, lots}
}

// StatsMarkdown renders the statistics of a single holding.
func StatsMarkdown(s folio.AssetStats) string {
	intro := ""
	if !s.PriceAvailable {
		intro = "> Price unavailable, value based statistics are not computed."
	}
	return Markdown(s.Key.String(), intro, StatsTables(s)...)
}

// ChangeTable renders the change of a price over several ranges.
func ChangeTable(key folio.Key, currency string, changes []folio.Change) Table {
	t := Table{
		Title:  key.String(),
		Header: []string{"Range", "From", "Start", "End", "Change", "Change %"},
		Align:  []Align{Left, Left, Right, Right, Right, Right},
	}
	for _, ch := range changes {
		if !ch.Available {
			t.append(ch.Range, na, na, na, na, na)
			continue
		}
		t.append(ch.Range, day(ch.From), money(ch.Start, currency), money(ch.End, currency),
			signedMoney(ch.Change, currency), signedPct(ch.Percent))
	}
	return t
}

// ChangeMarkdown renders the price change of a holding.
func ChangeMarkdown(key folio.Key, currency string, changes []folio.Change) string {
	return Markdown("Price Change", "", ChangeTable(key, currency, changes))
}
