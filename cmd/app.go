// Package cmd implements the folio command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/memo"
	"github.com/etnz/folio/quote"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&metricsCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")
	c.Register(&changeCmd{}, "reports")

	c.Register(&validateCmd{}, "transactions")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", "", "Path to the configuration file (default folio.yaml in . or $HOME/.folio)")
	txFile       = flag.String("tx", "", "Path to the transactions file (JSON array or JSONL), overrides the configuration")
	quotesFile   = flag.String("quotes", "", "Path to the quote file, overrides the configuration")
	currency     = flag.String("c", "", "Reporting currency, overrides the configuration")
	portfolioID  = flag.String("portfolio", "", "Only report on this portfolio id")
	outputFormat = flag.String("format", formatMarkdown, "Output format: markdown, raw, table or json")
	Verbose      = flag.Bool("v", false, "Verbose logging")
)

// session is everything a report needs, loaded once per command.
type session struct {
	cfg     *Config
	txs     []folio.Transaction
	prices  folio.PriceLookup
	history *quote.File // nil without a quote file
	days    *memo.Days
	now     time.Time
}

// load reads the configuration, the transactions and the price sources.
func load() (*session, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *txFile != "" {
		cfg.Transactions = *txFile
	}
	if *quotesFile != "" {
		cfg.Quotes = *quotesFile
	}
	if *portfolioID != "" {
		cfg.Portfolio = *portfolioID
	}
	if *currency != "" {
		cfg.Currency = *currency
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}
	initLogging(cfg.Log, *Verbose)
	log := logrus.WithField("component", "cmd")

	txs, err := readTransactions(cfg.Transactions)
	if err != nil {
		return nil, err
	}
	txs = folio.ForPortfolio(txs, cfg.Portfolio)
	log.WithFields(logrus.Fields{"file": cfg.Transactions, "count": len(txs), "portfolio": cfg.Portfolio}).Debug("transactions loaded")

	s := &session{
		cfg:  cfg,
		txs:  txs,
		days: memo.NewDays(nil, cfg.CacheSize),
		now:  time.Now(),
	}
	var chain quote.Chain
	if cfg.Quotes != "" {
		f, err := quote.Load(cfg.Quotes)
		if err != nil {
			return nil, err
		}
		s.history = f
		chain = append(chain, f)
	}
	if len(cfg.Payloads) > 0 {
		payloads := make([]quote.Payload, 0, len(cfg.Payloads))
		for _, p := range cfg.Payloads {
			qp, err := p.payload()
			if err != nil {
				return nil, err
			}
			payloads = append(payloads, qp)
		}
		prices, err := quote.LoadPayloads(payloads)
		if err != nil {
			return nil, err
		}
		chain = append(chain, prices)
	}
	if len(chain) == 0 {
		log.Warn("no price source configured, every holding is unpriced")
	}
	s.prices = chain
	return s, nil
}

func readTransactions(path string) ([]folio.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open transactions: %w", err)
	}
	defer f.Close()
	txs, err := folio.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txs, nil
}

func (s *session) close() { s.days.Stop() }

func (s *session) valuation() folio.ValuationOptions {
	return folio.ValuationOptions{
		Currency:          s.cfg.Currency,
		Rates:             folio.Rates(s.cfg.Rates),
		CostBasisOverride: s.cfg.CostBasisOverride,
	}
}

func (s *session) method() folio.CostBasisMethod {
	m, _ := folio.ParseCostBasisMethod(s.cfg.Method) // validated by LoadConfig
	return m
}

func (s *session) summary() folio.Summary {
	return folio.ValueTransactions(s.txs, s.prices, s.valuation())
}

// keys returns the keys selected by a -symbol flag, or every key.
func (s *session) keys(symbol string) ([]folio.Key, error) {
	if symbol == "" {
		return folio.Keys(s.txs), nil
	}
	key, err := folio.ParseKey(symbol)
	if err != nil {
		return nil, err
	}
	if len(folio.ForKey(s.txs, key)) == 0 {
		return nil, fmt.Errorf("no transaction for %s", key)
	}
	return []folio.Key{key}, nil
}
