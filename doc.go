// Package stockstat maintains running positions and cost metrics over a
// chronological stream of securities trades.
//
// The core functionalities include:
//   - Ledger: an always-sorted record of buy, sell and dividend trades,
//     imported from broker CSV or JSON exports.
//   - Book: per-instrument positions built by folding the ledger, matching
//     sells against open lots last-in-first-out.
//   - Dual cost metrics per position: the diluted cost (all capital ever
//     deployed, fees included, per held share) and the actual cost (buy
//     price of the unsold shares only, fees excluded).
//   - Realized profit in the cash-flow sense: sells and dividends in,
//     buys and fees out, per instrument.
//   - Position summaries with display rounding, feeding the report renderer.
//
// All arithmetic is exact decimal; binary floats never enter a cost
// computation. This package is the foundation of the `sst` command-line
// tool.
package stockstat
