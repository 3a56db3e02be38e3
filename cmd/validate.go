package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// validateCmd holds the flags for the 'validate' subcommand.
type validateCmd struct {
	rewrite bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the transactions file" }
func (*validateCmd) Usage() string {
	return `folio validate [-w]

  Checks every transaction (symbol, asset type, type, quantity, price, date,
  currency), the uniqueness of ids, and that a holding does not mix
  currencies. All errors are reported at once.

  With -w, the file is rewritten as JSONL sorted by date.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.rewrite, "w", false, "Rewrite the transactions file, sorted by date")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		printError("loading configuration", err)
		return subcommands.ExitFailure
	}
	if *txFile != "" {
		cfg.Transactions = *txFile
	}
	initLogging(cfg.Log, *Verbose)

	txs, err := readTransactions(cfg.Transactions)
	if err != nil {
		printError("validating transactions", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %d transactions, %d holdings\n", cfg.Transactions, len(txs), len(folio.Keys(txs)))

	if !c.rewrite {
		return subcommands.ExitSuccess
	}
	out, err := os.Create(cfg.Transactions)
	if err != nil {
		printError("rewriting transactions", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := folio.EncodeTransactions(out, txs); err != nil {
		printError("rewriting transactions", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
