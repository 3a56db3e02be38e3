// Package quote provides price sources for the folio engine.
//
// The engine only consumes prices through folio.PriceLookup. This package
// implements it on top of a local quote file, of raw vendor payloads saved
// on disk, and of a chain of such sources.
package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/etnz/folio"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "quote")

// fileFormat is the json layout of a quote file:
//
//	{
//	  "stock":  {"AAPL": {"price": 190.5, "change": 1.2}},
//	  "crypto": {"BTC":  {"price": 65000, "change": -500, "currency": "USD"}},
//	  "history": {"stock": {"AAPL": [{"time": "2025-01-02T00:00:00Z", "price": 185}]}}
//	}
type fileFormat struct {
	Stock   map[string]folio.Quote                            `json:"stock"`
	Crypto  map[string]folio.Quote                            `json:"crypto"`
	History map[folio.AssetType]map[string][]folio.PricePoint `json:"history"`
}

// File is an in-memory quote file. It implements folio.PriceLookup.
type File struct {
	quotes  folio.Prices
	history map[folio.Key][]folio.PricePoint
}

// Decode reads a quote file.
func Decode(r io.Reader) (*File, error) {
	var raw fileFormat
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode quotes: %w", err)
	}
	f := &File{
		quotes:  make(folio.Prices),
		history: make(map[folio.Key][]folio.PricePoint),
	}
	for symbol, q := range raw.Stock {
		f.quotes[folio.K(symbol, folio.Stock)] = q
	}
	for symbol, q := range raw.Crypto {
		f.quotes[folio.K(symbol, folio.Crypto)] = q
	}
	for assetType, symbols := range raw.History {
		if !assetType.IsValid() {
			return nil, fmt.Errorf("history: %w %q", folio.ErrUnknownAssetType, assetType)
		}
		for symbol, points := range symbols {
			sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
			f.history[folio.K(symbol, assetType)] = points
		}
	}
	return f, nil
}

// Load reads the quote file at path.
func Load(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open quote file: %w", err)
	}
	defer r.Close()
	f, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"path": path, "quotes": len(f.quotes)}).Debug("quote file loaded")
	return f, nil
}

// Quote implements folio.PriceLookup.
func (f *File) Quote(symbol string, assetType folio.AssetType) (folio.Quote, bool) {
	return f.quotes.Quote(symbol, assetType)
}

// Prices returns a copy of all the quotes.
func (f *File) Prices() folio.Prices {
	res := make(folio.Prices, len(f.quotes))
	for k, q := range f.quotes {
		res[k] = q
	}
	return res
}

// History returns the price history of key, sorted by time. When the file
// has a current quote but no point for it, the history is empty.
func (f *File) History(key folio.Key) []folio.PricePoint {
	return f.history[key]
}

// Len returns the number of quotes.
func (f *File) Len() int { return len(f.quotes) }
