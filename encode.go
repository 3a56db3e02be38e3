package folio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// txLine is the wire form of a transaction. Amounts are decoded as decimals
// so that "0.1" and 0.1 are both accepted, and dates may omit the time.
type txLine struct {
	ID          string          `json:"id"`
	Symbol      string          `json:"symbol"`
	AssetType   string          `json:"assetType"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency,omitempty"`
	Date        string          `json:"date"`
	AccountID   string          `json:"accountId,omitempty"`
	PortfolioID string          `json:"portfolioId,omitempty"`
}

// parseDate accepts RFC 3339 timestamps and plain dates (UTC midnight).
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

func (l txLine) transaction() (Transaction, error) {
	assetType := Stock
	if l.AssetType != "" {
		var err error
		if assetType, err = ParseAssetType(l.AssetType); err != nil {
			return Transaction{}, err
		}
	}
	on, err := parseDate(l.Date)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          l.ID,
		Symbol:      strings.TrimSpace(l.Symbol),
		AssetType:   assetType,
		Type:        TransactionType(strings.ToLower(strings.TrimSpace(l.Type))),
		Quantity:    float(l.Quantity),
		Price:       float(l.Price),
		Currency:    strings.TrimSpace(l.Currency),
		Date:        on,
		AccountID:   l.AccountID,
		PortfolioID: l.PortfolioID,
	}, nil
}

// DecodeTransactions reads transactions either as a JSON array or as JSONL
// (one object per line, blank lines ignored), then validates them with
// ValidateTransactions.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read transactions: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var lines []txLine
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, fmt.Errorf("could not decode transactions: %w", err)
		}
	} else {
		scanner := bufio.NewScanner(bytes.NewReader(trimmed))
		n := 0
		for scanner.Scan() {
			n++
			lineBytes := bytes.TrimSpace(scanner.Bytes())
			if len(lineBytes) == 0 {
				continue // Skip empty lines
			}
			var l txLine
			if err := json.Unmarshal(lineBytes, &l); err != nil {
				return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", n, string(lineBytes), err)
			}
			lines = append(lines, l)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("could not read transactions: %w", err)
		}
	}

	txs := make([]Transaction, 0, len(lines))
	for i, l := range lines {
		tx, err := l.transaction()
		if err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	if err := ValidateTransactions(txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// EncodeTransactions writes txs as JSONL, sorted by date.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	enc := json.NewEncoder(w)
	for _, tx := range SortByDate(txs) {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
		}
	}
	return nil
}
