// Package pure memoizes pure functions.
//
// Memoization assumes purity — not just determinism, but referential
// transparency. The package cannot detect an impure callback; wrapping one
// (anything that reads time, I/O, or mutable state) silently caches stale
// answers, and that responsibility stays with the caller.
//
// A process-wide Registry maps each callback to its Cache, so memoizing the
// same function twice shares one table. Caches are unbounded by default and
// never evict; WithMaxSize bounds them with dual-generation rotation and
// WithTTL expires entries after a validity window.
//
// Argument signatures are derived per argument: fmt.Stringer values key by
// String(), runtime-comparable values key by themselves, and everything
// else keys by an xxhash of its printed form.
package pure
