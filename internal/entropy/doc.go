// Package entropy reads seed material from the operating system's secure random facility.
// The rest of pgen depends only on the Source interface; the platform implementation is
// chosen at build time.
package entropy
