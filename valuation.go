package folio

import (
	"github.com/shopspring/decimal"
)

// ValuationOptions configures Value.
type ValuationOptions struct {
	// Currency is the reporting currency, DefaultCurrency if empty.
	Currency string
	// Rates converts holding and quote currencies into Currency.
	Rates Rates
	// CostBasisOverride, when set, replaces the calculated total cost.
	CostBasisOverride *float64
}

// Position is a holding valued at the current market price. All monetary
// values are in the summary currency.
type Position struct {
	Holding
	Price            float64 `json:"price"`
	PriceAvailable   bool    `json:"priceAvailable"`
	CurrentValue     float64 `json:"currentValue"`
	CostBasis        float64 `json:"costBasis"`
	Gain             float64 `json:"gain"`
	GainPercent      float64 `json:"gainPercent"`
	DayChange        float64 `json:"dayChange"`
	DayChangePercent float64 `json:"dayChangePercent"`
	Allocation       float64 `json:"allocation"` // Allocation is the percentage of the total value.
}

// Summary aggregates the valuation of a portfolio.
//
// Holdings without a price (or without an exchange rate to the summary
// currency) are listed in Unpriced. They contribute neither to the value nor
// to the cost, so that a missing quote is never reported as a loss; their
// cost is reported in UnpricedCost.
type Summary struct {
	Currency         string     `json:"currency"`
	TotalValue       float64    `json:"totalValue"`
	TotalCost        float64    `json:"totalCost"`
	CalculatedCost   float64    `json:"calculatedCost"`
	CostOverridden   bool       `json:"costOverridden"`
	TotalGain        float64    `json:"totalGain"`
	TotalGainPercent float64    `json:"totalGainPercent"`
	DayChange        float64    `json:"dayChange"`
	DayChangePercent float64    `json:"dayChangePercent"`
	Unpriced         []Key      `json:"unpriced,omitempty"`
	UnpricedCost     float64    `json:"unpricedCost"`
	Holdings         []Position `json:"holdings"`
}

// Complete reports whether every holding could be priced.
func (s Summary) Complete() bool { return len(s.Unpriced) == 0 }

// Position returns the position of key, if any.
func (s Summary) Position(key Key) (Position, bool) {
	for _, p := range s.Holdings {
		if p.Key() == key {
			return p, true
		}
	}
	return Position{}, false
}

// valued is the decimal state of a position being valued.
type valued struct {
	available bool
	price     decimal.Decimal // unit price in the summary currency
	value     decimal.Decimal
	cost      decimal.Decimal
	day       decimal.Decimal
}

func valuePosition(h Holding, prices PriceLookup, currency string, rates Rates) valued {
	var v valued
	qty := newDecimal(h.Quantity)
	costRate, costOK := rates.Rate(h.Currency, currency)
	if costOK {
		v.cost = qty.Mul(newDecimal(h.AvgCost)).Mul(newDecimal(costRate))
	}
	if prices == nil {
		return v
	}
	q, ok := prices.Quote(h.Symbol, h.AssetType)
	if !ok {
		return v
	}
	quoteCurrency := q.Currency
	if quoteCurrency == "" {
		quoteCurrency = h.Currency
	}
	priceRate, priceOK := rates.Rate(quoteCurrency, currency)
	if !priceOK || !costOK {
		return v
	}
	v.available = true
	v.price = newDecimal(q.Price).Mul(newDecimal(priceRate))
	v.value = qty.Mul(v.price)
	v.day = qty.Mul(newDecimal(q.Change)).Mul(newDecimal(priceRate))
	return v
}

// Value values holdings with the current prices and aggregates them into a
// portfolio summary.
func Value(holdings []Holding, prices PriceLookup, opts ValuationOptions) Summary {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	s := Summary{Currency: currency, Holdings: make([]Position, 0, len(holdings))}

	states := make([]valued, len(holdings))
	var totalValue, totalCost, unpricedCost, dayChange decimal.Decimal
	for i, h := range holdings {
		v := valuePosition(h, prices, currency, opts.Rates)
		states[i] = v
		if !v.available {
			s.Unpriced = append(s.Unpriced, h.Key())
			unpricedCost = unpricedCost.Add(v.cost)
			continue
		}
		totalValue = totalValue.Add(v.value)
		totalCost = totalCost.Add(v.cost)
		dayChange = dayChange.Add(v.day)
	}

	for i, h := range holdings {
		v := states[i]
		p := Position{Holding: h, CostBasis: float(v.cost)}
		if v.available {
			gain := v.value.Sub(v.cost)
			p.PriceAvailable = true
			p.Price = float(v.price)
			p.CurrentValue = float(v.value)
			p.Gain = float(gain)
			p.GainPercent = float(percent(gain, v.cost))
			p.DayChange = float(v.day)
			p.DayChangePercent = float(percent(v.day, v.value.Sub(v.day)))
			p.Allocation = float(percent(v.value, totalValue))
		}
		s.Holdings = append(s.Holdings, p)
	}

	s.TotalValue = float(totalValue)
	s.CalculatedCost = float(totalCost)
	s.UnpricedCost = float(unpricedCost)
	cost := totalCost
	if opts.CostBasisOverride != nil {
		cost = newDecimal(*opts.CostBasisOverride)
		s.CostOverridden = true
	}
	gain := totalValue.Sub(cost)
	s.TotalCost = float(cost)
	s.TotalGain = float(gain)
	s.TotalGainPercent = float(percent(gain, cost))
	s.DayChange = float(dayChange)
	// relative to yesterday's value.
	s.DayChangePercent = float(percent(dayChange, totalValue.Sub(dayChange)))
	return s
}

// ValueTransactions is a shorthand for Value(Holdings(txs), prices, opts).
func ValueTransactions(txs []Transaction, prices PriceLookup, opts ValuationOptions) Summary {
	return Value(Holdings(txs), prices, opts)
}

// AccountSummary is the valuation of a single account.
type AccountSummary struct {
	AccountID string  `json:"accountId"`
	Summary   Summary `json:"summary"`
}

// ValueAccounts values each account separately. The cost basis override
// applies to a whole portfolio, so it is ignored here.
func ValueAccounts(txs []Transaction, prices PriceLookup, opts ValuationOptions) []AccountSummary {
	opts.CostBasisOverride = nil
	var res []AccountSummary
	for _, ah := range HoldingsByAccount(txs) {
		res = append(res, AccountSummary{AccountID: ah.AccountID, Summary: Value(ah.Holdings, prices, opts)})
	}
	return res
}
