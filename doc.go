// Package main provides the pgen command. pgen generates passwords from letters,
// digits and symbols, or from an explicit character set, and can copy them to the
// clipboard, append them to a file and record generation metadata in a local
// sqlite history. Configuration is read from pgen.toml, PGEN_* environment
// variables and command-line flags.
package main
