package folio

import (
	"time"

	"github.com/shopspring/decimal"
)

// longTermThreshold is the holding duration from which a lot is long term.
const longTermThreshold = time.Duration(365.25 * 24 * float64(time.Hour))

// TaxLot is the unsold remainder of a single purchase.
type TaxLot struct {
	TransactionID string        `json:"transactionId,omitempty"`
	AccountID     string        `json:"accountId,omitempty"`
	PurchaseDate  time.Time     `json:"purchaseDate"`
	Quantity      float64       `json:"quantity"` // Quantity is what remains of the purchase.
	PurchasePrice float64       `json:"purchasePrice"`
	CostBasis     float64       `json:"costBasis"`
	CurrentValue  float64       `json:"currentValue,omitempty"`
	Gain          float64       `json:"gain,omitempty"`
	GainPercent   float64       `json:"gainPercent,omitempty"`
	HoldingPeriod HoldingPeriod `json:"holdingPeriod"`
	DaysHeld      int           `json:"daysHeld"`
}

// GainSplit splits a gain by holding period.
type GainSplit struct {
	Short float64 `json:"short"`
	Long  float64 `json:"long"`
	Total float64 `json:"total"`
}

// LotReport is the result of replaying a holding's transactions with FIFO.
// Without a price in the holding currency, the lots values, gains and the
// unrealized split are left at zero and PriceAvailable is false.
type LotReport struct {
	Key            Key       `json:"key"`
	Currency       string    `json:"currency"`
	PriceAvailable bool      `json:"priceAvailable"`
	Price          float64   `json:"price,omitempty"`
	Lots           []TaxLot  `json:"lots"`
	Quantity       float64   `json:"quantity"`
	CostBasis      float64   `json:"costBasis"`
	Realized       GainSplit `json:"realized"`
	Unrealized     GainSplit `json:"unrealized"`
}

// lot represents a single purchase of a security.
type lot struct {
	id       string
	account  string
	date     time.Time
	quantity decimal.Decimal // remaining
	price    decimal.Decimal
}

type lots []lot

// sell consumes quantityToSell from the oldest lots first. Fully consumed
// lots are removed. Selling more than available simply exhausts the lots.
// For each consumed portion, consumed is called with the lot and the
// quantity taken from it.
func (l lots) sell(quantityToSell decimal.Decimal, consumed func(lot, decimal.Decimal)) lots {
	var remainingLots lots
	for _, currentLot := range l {
		if !quantityToSell.IsPositive() || !currentLot.quantity.IsPositive() {
			if currentLot.quantity.IsPositive() {
				remainingLots = append(remainingLots, currentLot)
			}
			continue
		}
		used := minDecimal(currentLot.quantity, quantityToSell)
		if consumed != nil {
			consumed(currentLot, used)
		}
		currentLot.quantity = currentLot.quantity.Sub(used)
		quantityToSell = quantityToSell.Sub(used)
		if currentLot.quantity.IsPositive() {
			remainingLots = append(remainingLots, currentLot)
		}
	}
	return remainingLots
}

// holdingPeriod classifies a duration as short or long term.
func holdingPeriod(from, to time.Time) HoldingPeriod {
	if to.Sub(from) >= longTermThreshold {
		return LongTerm
	}
	return ShortTerm
}

type gainAcc struct{ short, long decimal.Decimal }

// add accumulates a gain into the split.
func (g *gainAcc) add(p HoldingPeriod, gain decimal.Decimal) {
	if p == LongTerm {
		g.long = g.long.Add(gain)
	} else {
		g.short = g.short.Add(gain)
	}
}

func (g gainAcc) split() GainSplit {
	return GainSplit{Short: float(g.short), Long: float(g.long), Total: float(g.short.Add(g.long))}
}

// openLots replays the transactions of key in date order and returns the
// remaining lots along with the realized gains, split by the holding period
// at the time of the sale.
func openLots(txs []Transaction, key Key) (lots, gainAcc) {
	var (
		open     lots
		realized gainAcc
	)
	for _, tx := range SortByDate(ForKey(txs, key)) {
		switch tx.Type {
		case Buy:
			open = append(open, lot{
				id:       tx.ID,
				account:  tx.AccountID,
				date:     tx.Date,
				quantity: newDecimal(tx.Quantity),
				price:    newDecimal(tx.Price),
			})
		case Sell:
			proceeds := newDecimal(tx.Price)
			open = open.sell(newDecimal(tx.Quantity), func(l lot, q decimal.Decimal) {
				realized.add(holdingPeriod(l.date, tx.Date), proceeds.Sub(l.price).Mul(q))
			})
		}
	}
	return open, realized
}

// holdingQuote looks up the quote of key. A quote in another currency than
// the holding one is not usable.
func holdingQuote(prices PriceLookup, key Key, currency string) (Quote, bool) {
	if prices == nil {
		return Quote{}, false
	}
	q, ok := prices.Quote(key.Symbol, key.AssetType)
	if !ok || (q.Currency != "" && q.Currency != currency) {
		return Quote{}, false
	}
	return q, true
}

// TaxLots replays the transactions of key with FIFO matching and values the
// remaining lots at the current price from prices. days computes the days
// held; nil uses plain calendar arithmetic.
func TaxLots(txs []Transaction, key Key, prices PriceLookup, now time.Time, days DayCounter) LotReport {
	if days == nil {
		days = CalendarDays{}
	}
	open, realized := openLots(txs, key)

	report := LotReport{Key: key, Currency: DefaultCurrency, Realized: realized.split()}
	if own := ForKey(txs, key); len(own) > 0 {
		report.Currency = own[0].CurrencyOrDefault()
	}
	q, ok := holdingQuote(prices, key, report.Currency)
	report.PriceAvailable = ok
	report.Price = q.Price
	current := newDecimal(q.Price)

	var (
		unrealized gainAcc
		quantity   = zero
		costBasis  = zero
	)
	for _, l := range open {
		cost := l.quantity.Mul(l.price)
		period := holdingPeriod(l.date, now)
		quantity = quantity.Add(l.quantity)
		costBasis = costBasis.Add(cost)
		t := TaxLot{
			TransactionID: l.id,
			AccountID:     l.account,
			PurchaseDate:  l.date,
			Quantity:      float(l.quantity),
			PurchasePrice: float(l.price),
			CostBasis:     float(cost),
			HoldingPeriod: period,
			DaysHeld:      days.DaysBetween(l.date, now),
		}
		if ok {
			value := l.quantity.Mul(current)
			gain := value.Sub(cost)
			unrealized.add(period, gain)
			t.CurrentValue = float(value)
			t.Gain = float(gain)
			t.GainPercent = float(percent(gain, cost))
		}
		report.Lots = append(report.Lots, t)
	}
	report.Quantity = float(quantity)
	report.CostBasis = float(costBasis)
	report.Unrealized = unrealized.split()
	return report
}

// RealizedGain returns the gains locked in by the sales of key, using the
// given cost basis method.
func RealizedGain(txs []Transaction, key Key, method CostBasisMethod) float64 {
	switch method {
	case FIFO:
		_, realized := openLots(txs, key)
		return realized.split().Total
	case AverageCost:
		var p = position{key: key, accounts: map[string]struct{}{}}
		gain := zero
		for _, tx := range SortByDate(ForKey(txs, key)) {
			if tx.Type == Sell {
				sold := minDecimal(newDecimal(tx.Quantity), p.quantity)
				if sold.IsPositive() {
					gain = gain.Add(newDecimal(tx.Price).Sub(p.avgCost).Mul(sold))
				}
			}
			p.apply(tx)
		}
		return float(gain)
	default:
		return 0
	}
}
