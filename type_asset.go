package folio

import (
	"fmt"
	"strings"
)

// AssetType distinguishes stocks from crypto currencies. The same ticker
// can exist as both, and they are never merged.
type AssetType string

const (
	Stock  AssetType = "stock"
	Crypto AssetType = "crypto"
)

func (a AssetType) String() string { return string(a) }

// IsValid reports whether a is a known asset type.
func (a AssetType) IsValid() bool { return a == Stock || a == Crypto }

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock", "stocks", "equity":
		return Stock, nil
	case "crypto", "cryptocurrency":
		return Crypto, nil
	default:
		return "", fmt.Errorf("unknown asset type %q: %w", s, ErrUnknownAssetType)
	}
}

// TransactionType is either a buy or a sell.
type TransactionType string

const (
	Buy  TransactionType = "buy"
	Sell TransactionType = "sell"
)

func (t TransactionType) String() string { return string(t) }

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool { return t == Buy || t == Sell }

// Key identifies a holding: a symbol of a given asset type.
type Key struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"assetType"`
}

// K is a shorthand for Key{symbol, assetType}.
func K(symbol string, assetType AssetType) Key { return Key{Symbol: symbol, AssetType: assetType} }

func (k Key) String() string { return k.Symbol + "/" + k.AssetType.String() }

// less orders keys by symbol, then asset type.
func (k Key) less(o Key) bool {
	if k.Symbol != o.Symbol {
		return k.Symbol < o.Symbol
	}
	return k.AssetType < o.AssetType
}

// ParseKey parses "SYMBOL" or "SYMBOL/assettype". A bare symbol is a stock.
func ParseKey(s string) (Key, error) {
	symbol, kind, found := strings.Cut(strings.TrimSpace(s), "/")
	if symbol == "" {
		return Key{}, fmt.Errorf("invalid key %q: %w", s, ErrMissingSymbol)
	}
	if !found {
		return K(symbol, Stock), nil
	}
	at, err := ParseAssetType(kind)
	if err != nil {
		return Key{}, err
	}
	return K(symbol, at), nil
}

// HoldingPeriod classifies a lot as short or long term.
type HoldingPeriod string

const (
	ShortTerm HoldingPeriod = "short"
	LongTerm  HoldingPeriod = "long"
)

func (p HoldingPeriod) String() string { return string(p) }
