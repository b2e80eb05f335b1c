// Package random expands a one-time entropy seed into an unbounded stream of
// 64-bit words and samples unbiased indices from it.
//
// A Stream is owned by exactly one generation session. Nothing in this package
// is global and nothing is safe for concurrent use.
//
// The default Mixer is a keyed counter-mode bit mixer. Its statistical
// properties are verified by the package tests; it has not been cryptanalysed
// and is not a substitute for a vetted CSPRNG. The ChaCha20 stream is available
// where that matters.
package random
