package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio"
	"github.com/sirupsen/logrus"
)

// ErrNoPrice is returned when a payload does not contain a usable price.
var ErrNoPrice = errors.New("no price in payload")

// JSONPath extracts a quote from a vendor payload using jsonpath
// expressions. Price is required. The daily change comes from Change when
// set, else it is derived from PreviousClose or ChangePercent.
type JSONPath struct {
	Price         string
	Change        string
	PreviousClose string
	ChangePercent string
	Currency      string
}

// Yahoo reads the payload of the Yahoo Finance chart endpoint.
var Yahoo = JSONPath{
	Price:         "$.chart.result[0].meta.regularMarketPrice",
	PreviousClose: "$.chart.result[0].meta.chartPreviousClose",
	Currency:      "$.chart.result[0].meta.currency",
}

// CoinGecko reads the payload of the CoinGecko simple price endpoint for a
// coin id (e.g. "bitcoin") quoted in vs (e.g. "usd").
func CoinGecko(id, vs string) JSONPath {
	return JSONPath{
		Price:         fmt.Sprintf("$[%q][%q]", id, vs),
		ChangePercent: fmt.Sprintf("$[%q][%q]", id, vs+"_24h_change"),
	}
}

// get evaluates path and returns the first value found. jsonpath may return
// either a single value or a list of one.
func get(path string, payload any) (any, error) {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil, err
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("%q matched nothing", path)
		}
		v = list[0]
	}
	return v, nil
}

func getFloat(path string, payload any) (float64, error) {
	v, err := get(path, payload)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, v)
	}
	return f, nil
}

// Extract reads a quote from a decoded json payload.
func (p JSONPath) Extract(payload any) (folio.Quote, error) {
	var q folio.Quote
	price, err := getFloat(p.Price, payload)
	if err != nil {
		return q, fmt.Errorf("%w: %w", ErrNoPrice, err)
	}
	q.Price = price

	switch {
	case p.Change != "":
		if q.Change, err = getFloat(p.Change, payload); err != nil {
			return q, fmt.Errorf("change: %w", err)
		}
	case p.PreviousClose != "":
		prev, err := getFloat(p.PreviousClose, payload)
		if err != nil {
			return q, fmt.Errorf("previous close: %w", err)
		}
		q.Change = folio.Subtract(price, prev)
	case p.ChangePercent != "":
		pct, err := getFloat(p.ChangePercent, payload)
		if err != nil {
			return q, fmt.Errorf("change percent: %w", err)
		}
		// price = prev * (1 + pct/100)
		prev := folio.Divide(price, folio.Add(1, folio.Divide(pct, 100)))
		q.Change = folio.Subtract(price, prev)
	}

	if p.Currency != "" {
		v, err := get(p.Currency, payload)
		if err != nil {
			return q, fmt.Errorf("currency: %w", err)
		}
		if c, ok := v.(string); ok {
			q.Currency = c
		}
	}
	return q, nil
}

// ExtractBytes decodes a raw json payload and extracts a quote from it.
func (p JSONPath) ExtractBytes(data []byte) (folio.Quote, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return folio.Quote{}, fmt.Errorf("could not decode payload: %w", err)
	}
	return p.Extract(payload)
}

// Payload is a vendor payload saved on disk for one holding.
type Payload struct {
	Key  folio.Key
	Path string
	JSONPath
}

// LoadPayloads reads every payload and returns the quotes that could be
// extracted. A payload that cannot be read is an error, a payload without a
// price is skipped with a warning so that the holding is reported unpriced.
func LoadPayloads(payloads []Payload) (folio.Prices, error) {
	prices := make(folio.Prices, len(payloads))
	for _, p := range payloads {
		data, err := os.ReadFile(p.Path)
		if err != nil {
			return nil, fmt.Errorf("could not read payload for %s: %w", p.Key, err)
		}
		q, err := p.ExtractBytes(data)
		if err != nil {
			log.WithFields(logrus.Fields{"key": p.Key.String(), "path": p.Path}).WithError(err).Warn("payload ignored")
			continue
		}
		prices[p.Key] = q
	}
	return prices, nil
}
