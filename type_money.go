package folio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed for transactions and quotes that
// do not state one.
const DefaultCurrency = "USD"

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any supported numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if code == "" {
		return fmt.Errorf("currency is missing: %w", ErrInvalidCurrency)
	}
	if code != strings.ToUpper(code) || money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q: %w", code, ErrInvalidCurrency)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Fraction returns the number of minor unit digits of the currency (2 for
// USD, 0 for JPY).
func (m Money) Fraction() int { return m.currency().Fraction }

// String returns the string representation of the money value, rounded to
// the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.Round().IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) Float64() float64 { return float(m.value) }
func (m Money) Round() Money     { return Money{value: m.value.Round(int32(m.Fraction())), cur: m.cur} }

// Convert converts m into the currency to. Rates are expressed in the
// reporting currency, which has no rate of its own: a conversion goes
// through it, so both directions and crosses between two rated currencies
// work. It fails when neither currency has a rate.
func (m Money) Convert(rates Rates, to string) (Money, bool) {
	if m.cur == "" || to == "" || m.cur == to {
		return Money{value: m.value, cur: to}, true
	}
	from, fromOK := rates[m.cur]
	into, intoOK := rates[to]
	if (fromOK && from <= 0) || (intoOK && into <= 0) || (!fromOK && !intoOK) {
		return Money{}, false
	}
	value := m.value
	if fromOK {
		value = value.Mul(newDecimal(from))
	}
	if intoOK {
		value = div(value, newDecimal(into))
	}
	return Money{value: value, cur: to}, true
}
