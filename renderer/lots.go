package renderer

import (
	"strconv"

	"github.com/etnz/folio"
)

// LotsTable lists the open tax lots of one holding.
func LotsTable(r folio.LotReport) Table {
	currency := r.Currency
	t := Table{
		Title:  r.Key.String(),
		Header: []string{"Purchased", "Account", "Quantity", "Price", "Cost Basis", "Value", "Gain", "Gain %", "Term", "Days"},
		Align:  []Align{Left, Left, Right, Right, Right, Right, Right, Right, Center, Right},
	}
	for _, l := range r.Lots {
		value, gain, gainPct := na, na, na
		if r.PriceAvailable {
			value = money(l.CurrentValue, currency)
			gain = signedMoney(l.Gain, currency)
			gainPct = signedPct(l.GainPercent)
		}
		t.append(
			day(l.PurchaseDate),
			l.AccountID,
			quantity(l.Quantity),
			money(l.PurchasePrice, currency),
			money(l.CostBasis, currency),
			value,
			gain,
			gainPct,
			string(l.HoldingPeriod),
			strconv.Itoa(l.DaysHeld),
		)
	}
	return t
}

// GainsTable splits realized and unrealized gains by holding period.
func GainsTable(reports []folio.LotReport) Table {
	t := Table{
		Title:  "Gains",
		Header: []string{"Holding", "Realized Short", "Realized Long", "Unrealized Short", "Unrealized Long"},
		Align:  []Align{Left, Right, Right, Right, Right},
	}
	for _, r := range reports {
		short, long := na, na
		if r.PriceAvailable {
			short = signedMoney(r.Unrealized.Short, r.Currency)
			long = signedMoney(r.Unrealized.Long, r.Currency)
		}
		t.append(
			r.Key.String(),
			signedMoney(r.Realized.Short, r.Currency),
			signedMoney(r.Realized.Long, r.Currency),
			short,
			long,
		)
	}
	return t
}

// LotsMarkdown renders the FIFO tax lots of several holdings, each in its
// own currency.
func LotsMarkdown(reports []folio.LotReport) string {
	tables := make([]Table, 0, len(reports)+1)
	for _, r := range reports {
		tables = append(tables, LotsTable(r))
	}
	tables = append(tables, GainsTable(reports))
	return Markdown("Tax Lots", "Lots are matched first in, first out.", tables...)
}
