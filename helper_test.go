package folio

import (
	"math"
	"testing"
	"time"
)

// on is a helper for tests to create a UTC date at midnight.
func on(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// buy is a helper for tests to create a stock purchase in USD.
func buy(id, symbol string, qty, price float64, date time.Time) Transaction {
	return Transaction{ID: id, Symbol: symbol, AssetType: Stock, Type: Buy, Quantity: qty, Price: price, Currency: "USD", Date: date}
}

// sell is a helper for tests to create a stock sale in USD.
func sell(id, symbol string, qty, price float64, date time.Time) Transaction {
	return Transaction{ID: id, Symbol: symbol, AssetType: Stock, Type: Sell, Quantity: qty, Price: price, Currency: "USD", Date: date}
}

// in returns tx booked on account.
func in(account string, tx Transaction) Transaction {
	tx.AccountID = account
	return tx
}

// crypto returns tx as a crypto currency transaction.
func crypto(tx Transaction) Transaction {
	tx.AssetType = Crypto
	return tx
}

// approx reports whether a and b are equal up to 1e-9.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func assertApprox(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approx(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
