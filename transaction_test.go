package folio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	valid := buy("1", "AAPL", 10, 100, on(2024, time.January, 2))
	tests := []struct {
		name   string
		modify func(*Transaction)
		want   error
	}{
		{"valid", func(*Transaction) {}, nil},
		{"free", func(tx *Transaction) { tx.Price = 0 }, nil},
		{"default currency", func(tx *Transaction) { tx.Currency = "" }, nil},
		{"missing symbol", func(tx *Transaction) { tx.Symbol = " " }, ErrMissingSymbol},
		{"unknown asset type", func(tx *Transaction) { tx.AssetType = "bond" }, ErrUnknownAssetType},
		{"unknown type", func(tx *Transaction) { tx.Type = "split" }, ErrUnknownType},
		{"zero quantity", func(tx *Transaction) { tx.Quantity = 0 }, ErrInvalidQuantity},
		{"NaN quantity", func(tx *Transaction) { tx.Quantity = math.NaN() }, ErrInvalidQuantity},
		{"negative price", func(tx *Transaction) { tx.Price = -1 }, ErrInvalidPrice},
		{"infinite price", func(tx *Transaction) { tx.Price = math.Inf(1) }, ErrInvalidPrice},
		{"missing date", func(tx *Transaction) { tx.Date = time.Time{} }, ErrMissingDate},
		{"lowercase currency", func(tx *Transaction) { tx.Currency = "usd" }, ErrInvalidCurrency},
		{"unknown currency", func(tx *Transaction) { tx.Currency = "XYZ" }, ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.modify(&tx)
			err := tx.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateTransactions(t *testing.T) {
	d := on(2024, time.January, 2)
	eur := buy("3", "AAPL", 1, 100, d)
	eur.Currency = "EUR"
	txs := []Transaction{
		buy("1", "AAPL", 1, 100, d),
		buy("1", "MSFT", 1, 100, d),
		eur,
		buy("4", "GOOG", -1, 100, d),
		crypto(buy("5", "AAPL", 1, 100, d)),
	}
	err := ValidateTransactions(txs)
	for _, want := range []error{ErrDuplicateID, ErrMixedCurrency, ErrInvalidQuantity} {
		if !errors.Is(err, want) {
			t.Errorf("ValidateTransactions() error = %v, want %v", err, want)
		}
	}
	if err := ValidateTransactions(txs[:1]); err != nil {
		t.Errorf("ValidateTransactions() error = %v, want nil", err)
	}
}

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction("1", Buy, K("BTC", Crypto), 0.5, 40000, on(2024, time.January, 2), "RRSP")
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	if tx.Key() != K("BTC", Crypto) || tx.Amount() != 20000 || tx.Currency != DefaultCurrency {
		t.Errorf("NewTransaction() = %+v", tx)
	}
	if _, err := NewTransaction("2", Sell, K("BTC", Crypto), -1, 40000, on(2024, time.January, 2), ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("NewTransaction() error = %v, want %v", err, ErrInvalidQuantity)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"AAPL", K("AAPL", Stock), false},
		{"BTC/crypto", K("BTC", Crypto), false},
		{"BTC/stock", K("BTC", Stock), false},
		{"/crypto", Key{}, true},
		{"BTC/bond", Key{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransactions_Edit(t *testing.T) {
	d := on(2024, time.January, 2)
	txs := []Transaction{buy("1", "AAPL", 1, 100, d), buy("2", "MSFT", 1, 100, d)}

	replaced := Replace(txs, buy("2", "MSFT", 2, 90, d))
	if replaced[1].Quantity != 2 || txs[1].Quantity != 1 {
		t.Errorf("Replace() = %+v, must not modify its input", replaced)
	}
	if appended := Replace(txs, buy("3", "GOOG", 1, 100, d)); len(appended) != 3 {
		t.Errorf("Replace(new) = %+v, want it appended", appended)
	}
	if removed := Remove(txs, "1"); len(removed) != 1 || removed[0].ID != "2" {
		t.Errorf("Remove() = %+v, want only 2", removed)
	}
}

func TestTransactions_Filters(t *testing.T) {
	txs := []Transaction{
		in("TFSA", buy("1", "AAPL", 1, 100, on(2024, time.January, 2))),
		in("RRSP", buy("2", "MSFT", 1, 100, on(2024, time.February, 1))),
		in("TFSA", crypto(buy("3", "BTC", 1, 100, on(2024, time.March, 1)))),
	}
	txs[1].PortfolioID = "retirement"

	if got := ForAccount(txs, "TFSA"); len(got) != 2 {
		t.Errorf("ForAccount() = %+v, want 2", got)
	}
	if got := ForPortfolio(txs, "retirement"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("ForPortfolio() = %+v, want 2", got)
	}
	if got := ForPortfolio(txs, ""); len(got) != 3 {
		t.Errorf("ForPortfolio(\"\") = %+v, want all", got)
	}
	if got := Between(txs, on(2024, time.February, 1), time.Time{}); len(got) != 2 {
		t.Errorf("Between() = %+v, want 2", got)
	}
	want := []Key{K("AAPL", Stock), K("BTC", Crypto), K("MSFT", Stock)}
	got := Keys(txs)
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"usd", M(1234.5, "USD").String(), "$1,234.50"},
		{"rounded", M(0.125, "USD").String(), "$0.13"},
		{"signed gain", M(10, "USD").SignedString(), "+$10.00"},
		{"signed zero", M(0.001, "USD").SignedString(), "-"},
		{"percent", Percent(12.5).String(), "12.50%"},
		{"signed percent", Percent(-1.5).SignedString(), "-1.50%"},
		{"signed zero percent", Percent(0.001).SignedString(), "-"},
		{"percent half away from zero", Percent(12.345).String(), "12.35%"},
		{"signed negative half", Percent(-0.005).SignedString(), "-0.01%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
	if f := M(1, "JPY").Fraction(); f != 0 {
		t.Errorf("JPY fraction = %d, want 0", f)
	}
}

func TestMoney_Convert(t *testing.T) {
	rates := Rates{"EUR": 1.1, "CAD": 0.75, "GBP": 0}
	tests := []struct {
		name   string
		m      Money
		to     string
		want   float64
		wantOK bool
	}{
		{"same currency", M(5, "USD"), "USD", 5, true},
		{"into the reporting currency", M(100, "EUR"), "USD", 110, true},
		{"from the reporting currency", M(110, "USD"), "EUR", 100, true},
		{"cross rate", M(75, "EUR"), "CAD", 110, true},
		{"no rate", M(5, "CHF"), "JPY", 0, false},
		{"zero rate", M(5, "GBP"), "USD", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.m.Convert(rates, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("Convert() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok {
				assertApprox(t, "Convert()", got.Float64(), tt.want)
			}
		})
	}
}
