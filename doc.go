// Package folio is the accounting engine of a personal investment tracker.
//
// It turns a list of buy and sell transactions, stocks and crypto currencies
// alike, into derived views:
//   - Holdings: open positions with their weighted average cost.
//   - Tax lots: the unsold remainder of each purchase, matched with FIFO,
//     split between short and long holding periods.
//   - Summary: holdings valued at current prices, with gains, day change and
//     allocation, optionally with a manually overridden total cost.
//   - Metrics and asset statistics: CAGR, volatility, Sharpe ratio, DCA
//     effectiveness, best and worst trades, and so on.
//
// Every view is a pure function of the transactions and the prices. Nothing
// is stored, nothing is mutated, and all functions are safe for concurrent
// use. Amounts are float64 at the API boundary but computed with decimals,
// so Add(0.1, 0.2) is exactly 0.3.
//
// Prices come from a PriceLookup that can tell "no price" apart from a price
// of zero: an unpriced holding is reported as such and never valued at 0.
//
// This package is the foundation of the `folio` command-line tool.
package folio
