package folio

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"time"
)

// Validation errors. Transactions failing validation must be rejected
// before they reach the accounting functions.
var (
	ErrMissingSymbol    = errors.New("symbol is missing")
	ErrUnknownAssetType = errors.New("unknown asset type")
	ErrUnknownType      = errors.New("unknown transaction type")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrInvalidPrice     = errors.New("price must be a non-negative number")
	ErrMissingDate      = errors.New("date is missing")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrDuplicateID      = errors.New("duplicate transaction id")
	ErrMixedCurrency    = errors.New("holding mixes currencies")
)

// Transaction is an immutable buy or sell event.
type Transaction struct {
	ID          string          `json:"id"`
	Symbol      string          `json:"symbol"`
	AssetType   AssetType       `json:"assetType"`
	Type        TransactionType `json:"type"`
	Quantity    float64         `json:"quantity"`           // Quantity is the number of units, always positive.
	Price       float64         `json:"price"`              // Price is per unit, in Currency.
	Currency    string          `json:"currency,omitempty"` // Currency defaults to DefaultCurrency.
	Date        time.Time       `json:"date"`
	AccountID   string          `json:"accountId,omitempty"`
	PortfolioID string          `json:"portfolioId,omitempty"`
}

// NewTransaction creates and validates a transaction in the default currency.
func NewTransaction(id string, typ TransactionType, key Key, quantity, price float64, on time.Time, account string) (Transaction, error) {
	tx := Transaction{
		ID:        id,
		Symbol:    key.Symbol,
		AssetType: key.AssetType,
		Type:      typ,
		Quantity:  quantity,
		Price:     price,
		Currency:  DefaultCurrency,
		Date:      on,
		AccountID: account,
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Key returns the holding key of the transaction.
func (t Transaction) Key() Key { return K(t.Symbol, t.AssetType) }

// CurrencyOrDefault returns the transaction currency, or DefaultCurrency if unset.
func (t Transaction) CurrencyOrDefault() string {
	if t.Currency == "" {
		return DefaultCurrency
	}
	return t.Currency
}

// Amount returns quantity * price.
func (t Transaction) Amount() float64 { return Multiply(t.Quantity, t.Price) }

// Validate checks the structural validity of the transaction.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return t.fail(ErrMissingSymbol)
	}
	if !t.AssetType.IsValid() {
		return t.fail(fmt.Errorf("%w %q", ErrUnknownAssetType, t.AssetType))
	}
	if !t.Type.IsValid() {
		return t.fail(fmt.Errorf("%w %q", ErrUnknownType, t.Type))
	}
	if math.IsNaN(t.Quantity) || math.IsInf(t.Quantity, 0) || t.Quantity <= 0 {
		return t.fail(fmt.Errorf("%w, got %v", ErrInvalidQuantity, t.Quantity))
	}
	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) || t.Price < 0 {
		return t.fail(fmt.Errorf("%w, got %v", ErrInvalidPrice, t.Price))
	}
	if t.Date.IsZero() {
		return t.fail(ErrMissingDate)
	}
	if err := ValidateCurrency(t.CurrencyOrDefault()); err != nil {
		return t.fail(err)
	}
	return nil
}

func (t Transaction) fail(err error) error {
	if t.ID == "" {
		return fmt.Errorf("%s %s: %w", t.Type, t.Symbol, err)
	}
	return fmt.Errorf("transaction %q: %w", t.ID, err)
}

// ValidateTransactions validates every transaction and the consistency of the
// list: ids must be unique and a holding cannot mix currencies. All failures
// are returned joined.
func ValidateTransactions(txs []Transaction) error {
	var errs []error
	ids := make(map[string]struct{}, len(txs))
	currencies := make(map[Key]string)
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if tx.ID != "" {
			if _, exists := ids[tx.ID]; exists {
				errs = append(errs, tx.fail(ErrDuplicateID))
			}
			ids[tx.ID] = struct{}{}
		}
		c, seen := currencies[tx.Key()]
		switch {
		case !seen:
			currencies[tx.Key()] = tx.CurrencyOrDefault()
		case c != tx.CurrencyOrDefault():
			errs = append(errs, tx.fail(fmt.Errorf("%w: %s is in %s, got %s", ErrMixedCurrency, tx.Key(), c, tx.CurrencyOrDefault())))
		}
	}
	return errors.Join(errs...)
}

// SortByDate returns a copy of txs sorted by date. The sort is stable, meaning
// transactions at the same instant keep their original relative order.
func SortByDate(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Replace returns a copy of txs where the transaction with the same id as tx
// is replaced by tx. If no such transaction exists tx is appended.
func Replace(txs []Transaction, tx Transaction) []Transaction {
	res := slices.Clone(txs)
	for i := range res {
		if res[i].ID == tx.ID {
			res[i] = tx
			return res
		}
	}
	return append(res, tx)
}

// Remove returns a copy of txs without the transaction identified by id.
func Remove(txs []Transaction, id string) []Transaction {
	return filter(txs, func(t Transaction) bool { return t.ID != id })
}

// ForPortfolio returns the transactions of a portfolio. An empty id keeps all transactions.
func ForPortfolio(txs []Transaction, portfolioID string) []Transaction {
	if portfolioID == "" {
		return slices.Clone(txs)
	}
	return filter(txs, func(t Transaction) bool { return t.PortfolioID == portfolioID })
}

// ForAccount returns the transactions booked on an account.
func ForAccount(txs []Transaction, accountID string) []Transaction {
	return filter(txs, func(t Transaction) bool { return t.AccountID == accountID })
}

// ForKey returns the transactions of a single holding.
func ForKey(txs []Transaction, key Key) []Transaction {
	return filter(txs, func(t Transaction) bool { return t.Key() == key })
}

// Between returns the transactions dated in [from, to]. A zero bound is open.
func Between(txs []Transaction, from, to time.Time) []Transaction {
	return filter(txs, func(t Transaction) bool {
		return (from.IsZero() || !t.Date.Before(from)) && (to.IsZero() || !t.Date.After(to))
	})
}

// Keys returns the distinct holding keys found in txs, sorted.
func Keys(txs []Transaction) []Key {
	seen := make(map[Key]struct{})
	var keys []Key
	for _, t := range txs {
		if _, ok := seen[t.Key()]; !ok {
			seen[t.Key()] = struct{}{}
			keys = append(keys, t.Key())
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

func filter(txs []Transaction, keep func(Transaction) bool) []Transaction {
	var res []Transaction
	for _, t := range txs {
		if keep(t) {
			res = append(res, t)
		}
	}
	return res
}
