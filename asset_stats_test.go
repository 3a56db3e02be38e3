package folio

import (
	"testing"
	"time"
)

// statsFixture has a long term buy, a later and more expensive one, and an
// airdrop.
func statsFixture() []Transaction {
	return []Transaction{
		in("A", buy("1", "AAPL", 10, 100, on(2022, time.January, 3))),
		in("B", buy("2", "AAPL", 10, 200, on(2024, time.January, 2))),
		in("A", buy("3", "AAPL", 1, 0, on(2024, time.March, 1))),
		buy("4", "MSFT", 1, 300, on(2024, time.March, 1)),
	}
}

func TestNewAssetStats(t *testing.T) {
	key := K("AAPL", Stock)
	prices := Prices{key: {Price: 150}}
	s := NewAssetStats(statsFixture(), key, prices, 10000, StatsOptions{Now: on(2024, time.June, 1), Method: FIFO})

	if !s.PriceAvailable || s.Currency != "USD" || s.Method != "fifo" {
		t.Fatalf("NewAssetStats() = %+v", s)
	}
	if s.Quantity != 21 || s.Buys != 3 || s.DaysHeld != 880 {
		t.Errorf("Quantity, Buys, DaysHeld = %v, %v, %v, want 21, 3, 880", s.Quantity, s.Buys, s.DaysHeld)
	}
	assertApprox(t, "AvgBuyIn", s.AvgBuyIn, 3000.0/21)
	assertApprox(t, "CostBasis", s.CostBasis, 3000)
	assertApprox(t, "Gain", s.Gain, 150)
	assertApprox(t, "PriceToDouble", s.PriceToDouble, 6000.0/21)
	if s.CurrentValue != 3150 || s.Concentration != 31.5 {
		t.Errorf("CurrentValue, Concentration = %v, %v, want 3150, 31.5", s.CurrentValue, s.Concentration)
	}
	if s.BreakEvenPrice != nil {
		t.Errorf("BreakEvenPrice = %v, want nil for a winning position", *s.BreakEvenPrice)
	}

	if s.BestTrade == nil || s.BestTrade.TransactionID != "1" || *s.BestTrade.GainPercent != 50 {
		t.Errorf("BestTrade = %+v, want purchase 1 at +50%%", s.BestTrade)
	}
	if s.WorstTrade == nil || s.WorstTrade.TransactionID != "2" || *s.WorstTrade.GainPercent != -25 {
		t.Errorf("WorstTrade = %+v, want purchase 2 at -25%%", s.WorstTrade)
	}
	if s.LargestPurchase == nil || s.LargestPurchase.TransactionID != "2" {
		t.Errorf("LargestPurchase = %+v, want purchase 2", s.LargestPurchase)
	}
	assertApprox(t, "WinRate", s.WinRate, 200.0/3)
	if s.Streak != 1 {
		t.Errorf("Streak = %d, want 1", s.Streak)
	}
	if s.PatienceEarned != 500 {
		t.Errorf("PatienceEarned = %v, want 500", s.PatienceEarned)
	}

	if len(s.Accounts) != 2 || s.Accounts[0].AccountID != "A" || s.Accounts[0].CurrentValue != 1650 || s.Accounts[1].Gain != -500 {
		t.Errorf("Accounts = %+v, want A (1650) then B (-500)", s.Accounts)
	}
	if s.Lots.Quantity != s.Quantity {
		t.Errorf("Lots.Quantity = %v, want %v", s.Lots.Quantity, s.Quantity)
	}
}

func TestNewAssetStats_FreeAcquisition(t *testing.T) {
	key := K("AAPL", Stock)
	s := NewAssetStats(statsFixture(), key, Prices{key: {Price: 150}}, 0, StatsOptions{Now: on(2024, time.June, 1)})
	for _, tr := range []*Trade{s.BestTrade, s.WorstTrade} {
		if tr != nil && tr.TransactionID == "3" {
			t.Errorf("the airdrop must not be ranked: %+v", tr)
		}
	}
	if s.Concentration != 0 {
		t.Errorf("Concentration = %v, want 0 without a portfolio value", s.Concentration)
	}
}

func TestNewAssetStats_Loss(t *testing.T) {
	key := K("AAPL", Stock)
	s := NewAssetStats(statsFixture(), key, Prices{key: {Price: 100}}, 10000, StatsOptions{Now: on(2024, time.June, 1)})
	if s.BreakEvenPrice == nil || *s.BreakEvenPrice != s.AvgBuyIn {
		t.Errorf("BreakEvenPrice = %v, want %v", s.BreakEvenPrice, s.AvgBuyIn)
	}
	if s.WinRate == 0 || s.Streak != 1 {
		t.Errorf("WinRate, Streak = %v, %v, want the airdrop to win", s.WinRate, s.Streak)
	}
}

func TestNewAssetStats_Unpriced(t *testing.T) {
	key := K("AAPL", Stock)
	tests := []struct {
		name   string
		prices PriceLookup
	}{
		{"no lookup", nil},
		{"no quote", Prices{}},
		{"other currency", Prices{key: {Price: 150, Currency: "EUR"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAssetStats(statsFixture(), key, tt.prices, 10000, StatsOptions{Now: on(2024, time.June, 1)})
			if s.PriceAvailable || s.CurrentValue != 0 || s.BestTrade != nil || s.BreakEvenPrice != nil {
				t.Errorf("NewAssetStats() = %+v, want no valuation", s)
			}
			if s.Lots.PriceAvailable || (s.Lots.Unrealized != GainSplit{}) || s.PatienceEarned != 0 {
				t.Errorf("Lots = %+v, want lots without valuation", s.Lots)
			}
			if s.Quantity != 21 || s.LargestPurchase == nil || s.Buys != 3 {
				t.Errorf("NewAssetStats() = %+v, want the quantities anyway", s)
			}
		})
	}
}

func TestNewAssetStats_Closed(t *testing.T) {
	txs := []Transaction{
		buy("1", "AAPL", 10, 100, on(2024, time.January, 2)),
		sell("2", "AAPL", 10, 130, on(2024, time.February, 1)),
	}
	key := K("AAPL", Stock)
	s := NewAssetStats(txs, key, Prices{key: {Price: 150}}, 1000, StatsOptions{Now: on(2024, time.June, 1)})
	if s.Quantity != 0 || s.CurrentValue != 0 || s.Realized != 300 {
		t.Errorf("NewAssetStats() = %+v, want a closed position with 300 realized", s)
	}
	if s.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", s.Currency)
	}
}
