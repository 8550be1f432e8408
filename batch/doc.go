// Package batch evaluates independent circuits concurrently.
//
// Each Job builds its own circuit.Circuit, so jobs share no mutable state.
// Run bounds parallelism with an errgroup limit, keeps results in input
// order and records per-job failures in Result.Err; only context
// cancellation fails the batch as a whole.
package batch
