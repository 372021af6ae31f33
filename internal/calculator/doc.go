// Package calculator implements the contribution and settlement engine.
//
// Everything here is a pure function over models values: allocation edits
// return a new line, Aggregate returns a new allocation set, and
// ComputeSettlement returns a fresh Settlement. Callers own the state.
package calculator
