package folio

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRiskFreeRate is the risk free rate, in percent, used when none is configured.
const DefaultRiskFreeRate = 4.5

// tradingDays is the number of trading days in a year, used to annualize
// daily volatility.
const tradingDays = 252

// CAGR returns the compound annual growth rate, in percent, that grows
// start into end over years. It returns 0 when years or start is not
// positive.
func CAGR(start, end, years float64) float64 {
	if years <= 0 || start <= 0 {
		return 0
	}
	ratio := Divide(end, start)
	if ratio <= 0 {
		return -100
	}
	return (math.Pow(ratio, 1/years) - 1) * 100
}

// Volatility returns the annualized sample standard deviation of daily
// returns (stdDev * sqrt(252)), in the unit of the returns. It returns 0
// with fewer than two returns.
func Volatility(dailyReturns []float64) float64 {
	n := len(dailyReturns)
	if n < 2 {
		return 0
	}
	sum := zero
	for _, r := range dailyReturns {
		sum = sum.Add(newDecimal(r))
	}
	mean := div(sum, decimal.NewFromInt(int64(n)))
	variance := zero
	for _, r := range dailyReturns {
		d := newDecimal(r).Sub(mean)
		variance = variance.Add(d.Mul(d))
	}
	variance = div(variance, decimal.NewFromInt(int64(n-1)))
	return math.Sqrt(float(variance)) * math.Sqrt(tradingDays)
}

// EstimatedVolatility approximates the annualized volatility of a portfolio
// from a single day: it is the Volatility of the day change percentages of
// the priced positions. This is a cross-sectional proxy, not a volatility
// measured on a time series of portfolio returns.
func EstimatedVolatility(positions []Position) float64 {
	var returns []float64
	for _, p := range positions {
		if p.PriceAvailable {
			returns = append(returns, p.DayChangePercent)
		}
	}
	return Volatility(returns)
}

// SharpeRatio returns (portfolioReturn - riskFreeRate) / volatility, or 0
// when volatility is 0.
func SharpeRatio(portfolioReturn, riskFreeRate, volatility float64) float64 {
	return Divide(Subtract(portfolioReturn, riskFreeRate), volatility)
}

// SubPeriod is one period of a time weighted return computation. CashFlow
// is the net external flow at the beginning of the period.
type SubPeriod struct {
	StartValue float64 `json:"startValue"`
	EndValue   float64 `json:"endValue"`
	CashFlow   float64 `json:"cashFlow"`
}

// TimeWeightedReturn chains the returns of sub periods and returns the
// total, in percent. Periods starting from nothing are skipped.
func TimeWeightedReturn(periods []SubPeriod) float64 {
	growth := one
	for _, p := range periods {
		base := newDecimal(p.StartValue).Add(newDecimal(p.CashFlow))
		if !base.IsPositive() {
			continue
		}
		growth = growth.Mul(div(newDecimal(p.EndValue), base))
	}
	return float(growth.Sub(one).Mul(hundred))
}

// DCAResult compares the actual purchases of a holding with investing the
// same capital at once, at the first purchase price.
type DCAResult struct {
	Buys             int     `json:"buys"`
	Invested         float64 `json:"invested"`
	Units            float64 `json:"units"`
	AverageCost      float64 `json:"averageCost"`
	FirstPrice       float64 `json:"firstPrice"`
	LumpSumUnits     float64 `json:"lumpSumUnits"`
	Value            float64 `json:"value"`
	LumpSumValue     float64 `json:"lumpSumValue"`
	Advantage        float64 `json:"advantage"`        // Advantage is Value - LumpSumValue.
	AdvantagePercent float64 `json:"advantagePercent"` // AdvantagePercent is relative to LumpSumValue.
}

// Effective reports whether averaging in did better than the lump sum.
func (d DCAResult) Effective() bool { return d.Advantage > 0 }

// DCAEffectiveness compares the buys of key with a lump sum investment at
// the price of the first buy, both valued at currentPrice. Sells are
// ignored. It returns nil with fewer than two buys or when the lump sum
// would be worth 0.
func DCAEffectiveness(txs []Transaction, key Key, currentPrice float64) *DCAResult {
	var (
		res      DCAResult
		first    decimal.Decimal
		units    = zero
		invested = zero
	)
	for _, tx := range SortByDate(ForKey(txs, key)) {
		if tx.Type != Buy {
			continue
		}
		if res.Buys == 0 {
			first = newDecimal(tx.Price)
		}
		res.Buys++
		units = units.Add(newDecimal(tx.Quantity))
		invested = invested.Add(newDecimal(tx.Quantity).Mul(newDecimal(tx.Price)))
	}
	if res.Buys < 2 {
		return nil
	}
	price := newDecimal(currentPrice)
	lumpUnits := div(invested, first)
	lumpValue := lumpUnits.Mul(price)
	if lumpValue.IsZero() {
		return nil
	}
	value := units.Mul(price)
	advantage := value.Sub(lumpValue)
	res.Invested = float(invested)
	res.Units = float(units)
	res.AverageCost = float(div(invested, units))
	res.FirstPrice = float(first)
	res.LumpSumUnits = float(lumpUnits)
	res.Value = float(value)
	res.LumpSumValue = float(lumpValue)
	res.Advantage = float(advantage)
	res.AdvantagePercent = float(percent(advantage, lumpValue))
	return &res
}

// AllocationSlice is the share of the portfolio value in one category.
type AllocationSlice struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Percent  float64 `json:"percent"`
}

// ByAssetType categorizes positions by asset type.
func ByAssetType(p Position) string { return p.AssetType.String() }

// BySymbol categorizes positions by symbol.
func BySymbol(p Position) string { return p.Symbol }

// Allocation groups the current value of priced positions by category and
// returns the share of each, largest first. It returns an empty list when
// the total value is 0.
func Allocation(positions []Position, by func(Position) string) []AllocationSlice {
	values := make(map[string]decimal.Decimal)
	var order []string
	total := zero
	for _, p := range positions {
		if !p.PriceAvailable {
			continue
		}
		c := by(p)
		if _, ok := values[c]; !ok {
			order = append(order, c)
		}
		v := newDecimal(p.CurrentValue)
		values[c] = values[c].Add(v)
		total = total.Add(v)
	}
	slices := []AllocationSlice{}
	if total.IsZero() {
		return slices
	}
	for _, c := range order {
		slices = append(slices, AllocationSlice{
			Category: c,
			Value:    float(values[c]),
			Percent:  float(percent(values[c], total)),
		})
	}
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return slices
}

// MetricsOptions configures NewMetrics.
type MetricsOptions struct {
	RiskFreeRate float64 // in percent, see DefaultRiskFreeRate
	Now          time.Time
}

// HoldingDCA is the DCA effectiveness of one holding.
type HoldingDCA struct {
	Key    Key        `json:"key"`
	Result *DCAResult `json:"result"`
}

// Metrics gathers the performance and risk figures of a portfolio.
type Metrics struct {
	TotalReturn         float64           `json:"totalReturn"`
	YearsInvested       float64           `json:"yearsInvested"`
	CAGR                float64           `json:"cagr"`
	AnnualizedReturn    float64           `json:"annualizedReturn"`
	EstimatedVolatility float64           `json:"estimatedVolatility"`
	RiskFreeRate        float64           `json:"riskFreeRate"`
	SharpeRatio         float64           `json:"sharpeRatio"`
	Allocation          []AllocationSlice `json:"allocation"`
	DCA                 []HoldingDCA      `json:"dca,omitempty"`
}

// NewMetrics computes the metrics of a valued portfolio.
//
// CAGR grows the total cost into the total value over the time elapsed since
// the first transaction. The Sharpe ratio uses the CAGR once the portfolio
// is at least a year old, and the plain total return before that, since
// annualizing a few weeks of returns is meaningless.
func NewMetrics(summary Summary, txs []Transaction, opts MetricsOptions) Metrics {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	m := Metrics{
		TotalReturn:         summary.TotalGainPercent,
		RiskFreeRate:        opts.RiskFreeRate,
		EstimatedVolatility: EstimatedVolatility(summary.Holdings),
		Allocation:          Allocation(summary.Holdings, ByAssetType),
	}
	sorted := SortByDate(txs)
	if len(sorted) > 0 {
		m.YearsInvested = Years(sorted[0].Date, now)
	}
	m.CAGR = CAGR(summary.TotalCost, summary.TotalValue, m.YearsInvested)
	m.AnnualizedReturn = m.TotalReturn
	if m.YearsInvested >= 1 {
		m.AnnualizedReturn = m.CAGR
	}
	m.SharpeRatio = SharpeRatio(m.AnnualizedReturn, m.RiskFreeRate, m.EstimatedVolatility)

	for _, p := range summary.Holdings {
		if !p.PriceAvailable || p.Currency != summary.Currency {
			continue
		}
		if r := DCAEffectiveness(txs, p.Key(), p.Price); r != nil {
			m.DCA = append(m.DCA, HoldingDCA{Key: p.Key(), Result: r})
		}
	}
	return m
}
