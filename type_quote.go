package folio

import "time"

// Quote is the current market price of one unit of a security.
type Quote struct {
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`             // Change is the per unit change since the previous close.
	Currency string  `json:"currency,omitempty"` // Currency defaults to the holding currency.
}

// PriceLookup returns the current quote of a security. ok is false when no
// price is known, which must not be confused with a price of 0.
type PriceLookup interface {
	Quote(symbol string, assetType AssetType) (q Quote, ok bool)
}

// PriceFunc adapts a function to the PriceLookup interface.
type PriceFunc func(symbol string, assetType AssetType) (Quote, bool)

func (f PriceFunc) Quote(symbol string, assetType AssetType) (Quote, bool) {
	return f(symbol, assetType)
}

// Prices is an in-memory PriceLookup.
type Prices map[Key]Quote

func (p Prices) Quote(symbol string, assetType AssetType) (Quote, bool) {
	q, ok := p[K(symbol, assetType)]
	return q, ok
}

// Rates holds exchange rates: the value of one unit of a currency in the
// reporting currency.
type Rates map[string]float64

// Rate returns the rate to convert from currency into the reporting
// currency to. Same currencies always convert at 1.
func (r Rates) Rate(from, to string) (float64, bool) {
	if from == "" || to == "" || from == to {
		return 1, true
	}
	rate, ok := r[from]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// PricePoint is a historical price.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}
