// Package parexec provides the data-parallel execution capability the qsim
// engines depend on by interface: an Executor maps a function over a list of
// independent chunk indices.
//
// 🚀 Why an interface?
//
//	The engines split large-state sweeps (gate pairs, CNOT permutations,
//	outer products, channel scaling) into non-overlapping chunks, each chunk
//	writing to disjoint locations of a fresh or shared buffer. Whether those
//	chunks run on one goroutine or many must never change the result, so the
//	strategy is injected rather than hardwired:
//
//	  • Sync — runs chunks in index order on the calling goroutine.
//	    Deterministic scheduling; the default for tests.
//	  • Pool — one goroutine per chunk, bounded by a weighted semaphore
//	    sized to the worker count. Map returns only after every chunk
//	    completed.
//
// Contract:
//
//	Map(chunks, fn) invokes fn exactly once for every chunk index in
//	[0, chunks). fn must not retain the index beyond its call and chunk
//	workloads must not overlap in their writes; under that contract every
//	Executor is observationally identical.
//
// Concurrency: Map is synchronous — it does not return until all chunks are
// done. Executors are safe for use from multiple goroutines, but the engines
// themselves are single-caller by design.
package parexec
