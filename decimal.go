package folio

import (
	"math"

	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of decimal places kept by divisions.
const divisionPrecision = 28

var (
	zero    = decimal.Zero
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal.
//
// Floats are converted using their shortest representation, so 0.1 becomes
// exactly 0.1 and not 0.1000000000000000055511151231257827. NaN and
// infinities become 0.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return zero
		}
		return decimal.NewFromFloat32(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return zero
		}
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// float converts back to the nearest float64.
func float(d decimal.Decimal) float64 { return d.InexactFloat64() }

// div divides a by b, returning 0 when b is 0.
func div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return zero
	}
	return a.DivRound(b, divisionPrecision)
}

// percent returns part as a percentage of whole, 0 when whole is 0.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return zero
	}
	return part.Mul(hundred).DivRound(whole, divisionPrecision)
}

// weightedAverage blends an existing per-unit cost with a new purchase.
func weightedAverage(cost, qty, price, newQty decimal.Decimal) decimal.Decimal {
	total := qty.Add(newQty)
	if total.IsZero() {
		return zero
	}
	return cost.Mul(qty).Add(price.Mul(newQty)).DivRound(total, divisionPrecision)
}

// Add returns a+b without binary floating point drift: Add(0.1, 0.2) == 0.3.
func Add(a, b float64) float64 { return float(newDecimal(a).Add(newDecimal(b))) }

// Subtract returns a-b.
func Subtract(a, b float64) float64 { return float(newDecimal(a).Sub(newDecimal(b))) }

// Multiply returns a*b: Multiply(0.1, 0.2) == 0.02.
func Multiply(a, b float64) float64 { return float(newDecimal(a).Mul(newDecimal(b))) }

// Divide returns a/b, or 0 when b is 0.
func Divide(a, b float64) float64 { return float(div(newDecimal(a), newDecimal(b))) }

// Sum adds all values exactly before converting back to float64.
func Sum(values ...float64) float64 {
	total := zero
	for _, v := range values {
		total = total.Add(newDecimal(v))
	}
	return float(total)
}

// Percentage returns part/whole*100, or 0 when whole is 0.
func Percentage(part, whole float64) float64 {
	return float(percent(newDecimal(part), newDecimal(whole)))
}

// WeightedAverage returns the per-unit cost after buying newQty at newPrice
// on top of existingQty held at existingCost. It returns 0 when the
// resulting quantity is 0.
func WeightedAverage(existingCost, existingQty, newPrice, newQty float64) float64 {
	return float(weightedAverage(newDecimal(existingCost), newDecimal(existingQty), newDecimal(newPrice), newDecimal(newQty)))
}

// Round rounds value to the given number of decimals, halves away from
// zero: Round(10.125, 2) == 10.13.
func Round(value float64, decimals int) float64 {
	return float(newDecimal(value).Round(int32(decimals)))
}

// Compare compares a and b as decimals and returns -1, 0 or +1.
func Compare(a, b float64) int { return newDecimal(a).Cmp(newDecimal(b)) }

// Min returns the smaller of a and b using decimal comparison.
func Min(a, b float64) float64 {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
