package folio

import (
	"reflect"
	"slices"
	"testing"
	"time"
)

func TestHoldings(t *testing.T) {
	d1, d2, d3 := on(2024, time.January, 2), on(2024, time.February, 1), on(2024, time.March, 1)
	tests := []struct {
		name string
		txs  []Transaction
		want []Holding
	}{
		{
			name: "weighted average",
			txs:  []Transaction{buy("1", "AAPL", 10, 100, d1), buy("2", "AAPL", 10, 120, d2)},
			want: []Holding{{Symbol: "AAPL", AssetType: Stock, Currency: "USD", Quantity: 20, AvgCost: 110, FirstPurchase: d1, Accounts: []string{}}},
		},
		{
			name: "partial sell keeps the average cost",
			txs:  []Transaction{buy("1", "AAPL", 100, 150, d1), sell("2", "AAPL", 30, 180, d2)},
			want: []Holding{{Symbol: "AAPL", AssetType: Stock, Currency: "USD", Quantity: 70, AvgCost: 150, FirstPurchase: d1, Accounts: []string{}}},
		},
		{
			name: "full liquidation",
			txs:  []Transaction{buy("1", "AAPL", 10, 150, d1), sell("2", "AAPL", 10, 180, d2)},
			want: nil,
		},
		{
			name: "rebuy after liquidation starts over",
			txs:  []Transaction{buy("1", "AAPL", 10, 100, d1), sell("2", "AAPL", 10, 150, d2), buy("3", "AAPL", 5, 200, d3)},
			want: []Holding{{Symbol: "AAPL", AssetType: Stock, Currency: "USD", Quantity: 5, AvgCost: 200, FirstPurchase: d3, Accounts: []string{}}},
		},
		{
			name: "oversell closes the position",
			txs:  []Transaction{buy("1", "AAPL", 10, 100, d1), sell("2", "AAPL", 15, 150, d2)},
			want: nil,
		},
		{
			name: "rebuy after oversell starts over",
			txs:  []Transaction{buy("1", "AAPL", 10, 100, d1), sell("2", "AAPL", 15, 150, d2), buy("3", "AAPL", 6, 120, d3)},
			want: []Holding{{Symbol: "AAPL", AssetType: Stock, Currency: "USD", Quantity: 6, AvgCost: 120, FirstPurchase: d3, Accounts: []string{}}},
		},
		{
			name: "no transactions",
			txs:  nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Holdings(tt.txs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Holdings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHoldings_DateOrderIndependent(t *testing.T) {
	txs := []Transaction{
		buy("1", "AAPL", 10, 100, on(2024, time.January, 2)),
		buy("2", "AAPL", 10, 120, on(2024, time.February, 1)),
		sell("3", "AAPL", 5, 130, on(2024, time.March, 1)),
		buy("4", "AAPL", 5, 90, on(2024, time.April, 1)),
	}
	want := Holdings(txs)

	reversed := slices.Clone(txs)
	slices.Reverse(reversed)
	if got := Holdings(reversed); !reflect.DeepEqual(got, want) {
		t.Errorf("Holdings(reversed) = %+v, want %+v", got, want)
	}
	if txs[0].ID != "1" || reversed[0].ID != "4" {
		t.Errorf("Holdings() must not reorder its input")
	}
}

func TestHoldings_AssetTypesAreSeparate(t *testing.T) {
	d := on(2024, time.January, 2)
	txs := []Transaction{
		buy("1", "BTC", 10, 30, d),
		crypto(buy("2", "BTC", 0.5, 40000, d)),
	}
	got := Holdings(txs)
	if len(got) != 2 {
		t.Fatalf("len(Holdings()) = %d, want 2", len(got))
	}
	if got[0].Key() != K("BTC", Crypto) || got[1].Key() != K("BTC", Stock) {
		t.Errorf("keys = %v, %v, want BTC/crypto, BTC/stock", got[0].Key(), got[1].Key())
	}
	if got[0].AvgCost != 40000 || got[1].AvgCost != 30 {
		t.Errorf("AvgCost = %v, %v, want 40000, 30", got[0].AvgCost, got[1].AvgCost)
	}
}

func TestHoldingsByAccount(t *testing.T) {
	d1, d2 := on(2024, time.January, 2), on(2024, time.February, 1)
	txs := []Transaction{
		in("TFSA", buy("1", "AAPL", 10, 100, d1)),
		in("RRSP", buy("2", "AAPL", 5, 120, d1)),
		in("RRSP", sell("3", "AAPL", 5, 130, d2)),
		in("TFSA", buy("4", "MSFT", 2, 300, d2)),
	}
	got := HoldingsByAccount(txs)
	if len(got) != 1 {
		t.Fatalf("HoldingsByAccount() = %+v, want only TFSA", got)
	}
	if got[0].AccountID != "TFSA" || len(got[0].Holdings) != 2 {
		t.Errorf("HoldingsByAccount()[0] = %+v, want TFSA with 2 holdings", got[0])
	}

	all := Holdings(txs)
	if h, ok := FindHolding(all, K("AAPL", Stock)); !ok || h.Quantity != 10 || !slices.Equal(h.Accounts, []string{"RRSP", "TFSA"}) {
		t.Errorf("FindHolding(AAPL) = %+v, %v, want 10 units in RRSP and TFSA", h, ok)
	}
}
