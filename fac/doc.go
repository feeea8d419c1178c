// Package fac provides the process-wide log-factorial cache and a handful
// of numeric helpers (falling factorial, normal-quantile tail sizing) that
// every distribution engine in this module builds on.
//
// LnFac is a read-only, lazily-initialized singleton: the first call fills
// a fixed-size table by a direct cumulative sum of logarithms (arguments at
// or beyond FakLen use Stirling's series instead), after which the table is
// immutable and safe to read from any number of goroutines without
// further locking. Engines never duplicate this table per instance.
package fac
