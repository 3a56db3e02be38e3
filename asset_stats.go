package folio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a single purchase valued at the current price.
type Trade struct {
	TransactionID string    `json:"transactionId,omitempty"`
	AccountID     string    `json:"accountId,omitempty"`
	Date          time.Time `json:"date"`
	Quantity      float64   `json:"quantity"`
	Price         float64   `json:"price"`
	Amount        float64   `json:"amount"`
	CurrentValue  float64   `json:"currentValue"`
	Gain          float64   `json:"gain"`
	// GainPercent is nil for free acquisitions (airdrops, gifts), for which
	// a percentage is meaningless. It is not the same as breaking even.
	GainPercent *float64 `json:"gainPercent"`
}

// AccountBreakdown is the part of a holding held in one account.
type AccountBreakdown struct {
	AccountID    string  `json:"accountId"`
	Quantity     float64 `json:"quantity"`
	AvgCost      float64 `json:"avgCost"`
	CostBasis    float64 `json:"costBasis"`
	CurrentValue float64 `json:"currentValue"`
	Gain         float64 `json:"gain"`
}

// StatsOptions configures NewAssetStats.
type StatsOptions struct {
	Now    time.Time
	Days   DayCounter      // nil counts calendar days
	Method CostBasisMethod // used for the realized gain
}

// AssetStats is the detailed view of a single holding. Monetary values are
// in the holding currency.
type AssetStats struct {
	Key            Key                `json:"key"`
	Currency       string             `json:"currency"`
	PriceAvailable bool               `json:"priceAvailable"`
	Price          float64            `json:"price"`
	Quantity       float64            `json:"quantity"`
	AvgBuyIn       float64            `json:"avgBuyIn"`
	CostBasis      float64            `json:"costBasis"`
	CurrentValue   float64            `json:"currentValue"`
	Gain           float64            `json:"gain"`
	GainPercent    float64            `json:"gainPercent"`
	FirstPurchase  time.Time          `json:"firstPurchase"`
	DaysHeld       int                `json:"daysHeld"`
	Lots           LotReport          `json:"lots"`
	Accounts       []AccountBreakdown `json:"accounts"`

	Buys            int     `json:"buys"`
	BestTrade       *Trade  `json:"bestTrade,omitempty"`
	WorstTrade      *Trade  `json:"worstTrade,omitempty"`
	LargestPurchase *Trade  `json:"largestPurchase,omitempty"`
	WinRate         float64 `json:"winRate"` // WinRate is the percentage of buys above water.
	Streak          int     `json:"streak"`  // Streak counts the most recent buys that are all profitable.
	PatienceEarned  float64 `json:"patienceEarned"`
	// BreakEvenPrice is only set while the position is at a loss.
	BreakEvenPrice *float64 `json:"breakEvenPrice,omitempty"`
	PriceToDouble  float64  `json:"priceToDouble"`
	Concentration  float64  `json:"concentration"`
	Realized       float64  `json:"realized"`
	Method         string   `json:"method"`
}

// NewAssetStats computes the statistics of the holding key.
//
// The quote must be in the holding currency, a quote in another currency is
// treated as unavailable. totalPortfolioValue is the value of the whole
// portfolio in that same currency, used for the concentration.
//
// Without a price, only the figures that do not depend on it are computed:
// quantities, costs, lots quantities, largest purchase and realized gain.
func NewAssetStats(txs []Transaction, key Key, prices PriceLookup, totalPortfolioValue float64, opts StatsOptions) AssetStats {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	days := opts.Days
	if days == nil {
		days = CalendarDays{}
	}
	own := SortByDate(ForKey(txs, key))

	s := AssetStats{Key: key, Method: opts.Method.String()}
	if h, ok := FindHolding(Holdings(own), key); ok {
		s.Currency = h.Currency
		s.Quantity = h.Quantity
		s.AvgBuyIn = h.AvgCost
		s.FirstPurchase = h.FirstPurchase
		s.DaysHeld = days.DaysBetween(h.FirstPurchase, now)
	} else if len(own) > 0 {
		s.Currency = own[0].CurrencyOrDefault()
	}

	var price decimal.Decimal
	if q, ok := holdingQuote(prices, key, s.Currency); ok {
		s.PriceAvailable = true
		price = newDecimal(q.Price)
		s.Price = q.Price
	}

	qty := newDecimal(s.Quantity)
	avgCost := newDecimal(s.AvgBuyIn)
	cost := qty.Mul(avgCost)
	s.CostBasis = float(cost)
	s.Lots = TaxLots(own, key, prices, now, days)
	s.Realized = RealizedGain(own, key, opts.Method)
	s.Accounts = accountBreakdown(own, key, price, s.PriceAvailable)
	s.PriceToDouble = float(avgCost.Mul(decimal.NewFromInt(2)))

	trades := buyTrades(own, price)
	s.Buys = len(trades)
	s.LargestPurchase = largestPurchase(trades)
	if !s.PriceAvailable {
		return s
	}

	value := qty.Mul(price)
	gain := value.Sub(cost)
	s.CurrentValue = float(value)
	s.Gain = float(gain)
	s.GainPercent = float(percent(gain, cost))
	s.Concentration = float(percent(value, newDecimal(totalPortfolioValue)))
	s.PatienceEarned = s.Lots.Unrealized.Long
	if gain.IsNegative() {
		be := s.AvgBuyIn
		s.BreakEvenPrice = &be
	}
	s.BestTrade, s.WorstTrade = rankTrades(trades)
	s.WinRate, s.Streak = winRate(trades)
	return s
}

// buyTrades values every buy of txs, already sorted by date, at price.
func buyTrades(txs []Transaction, price decimal.Decimal) []Trade {
	var trades []Trade
	for _, tx := range txs {
		if tx.Type != Buy {
			continue
		}
		qty := newDecimal(tx.Quantity)
		amount := qty.Mul(newDecimal(tx.Price))
		value := qty.Mul(price)
		gain := value.Sub(amount)
		t := Trade{
			TransactionID: tx.ID,
			AccountID:     tx.AccountID,
			Date:          tx.Date,
			Quantity:      tx.Quantity,
			Price:         tx.Price,
			Amount:        float(amount),
			CurrentValue:  float(value),
			Gain:          float(gain),
		}
		if !amount.IsZero() {
			pct := float(percent(gain, amount))
			t.GainPercent = &pct
		}
		trades = append(trades, t)
	}
	return trades
}

// rankTrades returns the trades with the highest and lowest gain percent.
// Free acquisitions are not ranked. Ties go to the earliest trade.
func rankTrades(trades []Trade) (best, worst *Trade) {
	for i := range trades {
		t := &trades[i]
		if t.GainPercent == nil {
			continue
		}
		if best == nil || *t.GainPercent > *best.GainPercent {
			best = t
		}
		if worst == nil || *t.GainPercent < *worst.GainPercent {
			worst = t
		}
	}
	return best, worst
}

func largestPurchase(trades []Trade) *Trade {
	var largest *Trade
	for i := range trades {
		if largest == nil || Compare(trades[i].Amount, largest.Amount) > 0 {
			largest = &trades[i]
		}
	}
	return largest
}

// winRate returns the percentage of profitable trades and the number of
// consecutive profitable trades counting back from the most recent.
func winRate(trades []Trade) (rate float64, streak int) {
	if len(trades) == 0 {
		return 0, 0
	}
	wins := 0
	for _, t := range trades {
		if t.Gain > 0 {
			wins++
		}
	}
	for i := len(trades) - 1; i >= 0 && trades[i].Gain > 0; i-- {
		streak++
	}
	return Percentage(float64(wins), float64(len(trades))), streak
}

func accountBreakdown(txs []Transaction, key Key, price decimal.Decimal, priced bool) []AccountBreakdown {
	var res []AccountBreakdown
	for _, ah := range HoldingsByAccount(txs) {
		h, ok := FindHolding(ah.Holdings, key)
		if !ok {
			continue
		}
		qty := newDecimal(h.Quantity)
		cost := qty.Mul(newDecimal(h.AvgCost))
		b := AccountBreakdown{
			AccountID: ah.AccountID,
			Quantity:  h.Quantity,
			AvgCost:   h.AvgCost,
			CostBasis: float(cost),
		}
		if priced {
			value := qty.Mul(price)
			b.CurrentValue = float(value)
			b.Gain = float(value.Sub(cost))
		}
		res = append(res, b)
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CurrentValue > res[j].CurrentValue })
	return res
}
