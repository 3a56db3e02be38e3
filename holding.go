package folio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Holding is the current position in a security, derived from transactions.
type Holding struct {
	Symbol        string    `json:"symbol"`
	AssetType     AssetType `json:"assetType"`
	Currency      string    `json:"currency"`
	Quantity      float64   `json:"quantity"`
	AvgCost       float64   `json:"avgCost"` // AvgCost is the weighted average cost per unit.
	FirstPurchase time.Time `json:"firstPurchase"`
	Accounts      []string  `json:"accounts,omitempty"`
}

// Key returns the holding key.
func (h Holding) Key() Key { return K(h.Symbol, h.AssetType) }

// AccountHoldings groups the holdings of a single account.
type AccountHoldings struct {
	AccountID string    `json:"accountId"`
	Holdings  []Holding `json:"holdings"`
}

// position accumulates the state of one holding while replaying transactions.
type position struct {
	key           Key
	currency      string
	quantity      decimal.Decimal
	avgCost       decimal.Decimal
	firstPurchase time.Time
	accounts      map[string]struct{}
}

// apply folds one transaction into the position. Buys blend the average
// cost, sells only reduce the quantity.
func (p *position) apply(tx Transaction) {
	qty := newDecimal(tx.Quantity)
	switch tx.Type {
	case Buy:
		// a closed or oversold position starts over.
		if !p.quantity.IsPositive() {
			p.firstPurchase = tx.Date
			p.quantity = zero
			p.avgCost = zero
		}
		p.avgCost = weightedAverage(p.avgCost, p.quantity, newDecimal(tx.Price), qty)
		p.quantity = p.quantity.Add(qty)
	case Sell:
		// may go negative, such positions are dropped from the output.
		p.quantity = p.quantity.Sub(qty)
	}
	if tx.AccountID != "" {
		p.accounts[tx.AccountID] = struct{}{}
	}
}

func (p *position) holding() Holding {
	accounts := make([]string, 0, len(p.accounts))
	for a := range p.accounts {
		accounts = append(accounts, a)
	}
	sort.Strings(accounts)
	return Holding{
		Symbol:        p.key.Symbol,
		AssetType:     p.key.AssetType,
		Currency:      p.currency,
		Quantity:      float(p.quantity),
		AvgCost:       float(p.avgCost),
		FirstPurchase: p.firstPurchase,
		Accounts:      accounts,
	}
}

// Holdings folds transactions into the list of open holdings, using average
// cost accounting. Transactions are sorted by date first, so the input order
// does not matter. Holdings whose quantity is zero or less are closed and
// not returned. The result is sorted by symbol, then asset type.
func Holdings(txs []Transaction) []Holding {
	positions := make(map[Key]*position)
	for _, tx := range SortByDate(txs) {
		p, ok := positions[tx.Key()]
		if !ok {
			p = &position{
				key:      tx.Key(),
				currency: tx.CurrencyOrDefault(),
				accounts: make(map[string]struct{}),
			}
			positions[tx.Key()] = p
		}
		p.apply(tx)
	}

	var holdings []Holding
	for _, p := range positions {
		if !p.quantity.IsPositive() {
			continue
		}
		holdings = append(holdings, p.holding())
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Key().less(holdings[j].Key()) })
	return holdings
}

// HoldingsByAccount computes holdings separately for each account. Accounts
// without any open holding are omitted. The result is sorted by account id.
func HoldingsByAccount(txs []Transaction) []AccountHoldings {
	accounts := make(map[string][]Transaction)
	for _, tx := range txs {
		accounts[tx.AccountID] = append(accounts[tx.AccountID], tx)
	}
	var res []AccountHoldings
	for id, atxs := range accounts {
		holdings := Holdings(atxs)
		if len(holdings) == 0 {
			continue
		}
		res = append(res, AccountHoldings{AccountID: id, Holdings: holdings})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AccountID < res[j].AccountID })
	return res
}

// FindHolding returns the holding for key, if open.
func FindHolding(holdings []Holding, key Key) (Holding, bool) {
	for _, h := range holdings {
		if h.Key() == key {
			return h, true
		}
	}
	return Holding{}, false
}
