package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgen-dev/pgen/internal/config"
)

const (
	flagLength       = "length"
	flagCount        = "count"
	flagAlpha        = "alpha"
	flagNumeric      = "numeric"
	flagAlphanumeric = "alphanumeric"
	flagCharset      = "charset"
	flagExclude      = "exclude"
	flagNoRepeat     = "no-repeat"
	flagEntropy      = "entropy"
	flagAlgorithm    = "algorithm"
	flagShared       = "shared-stream"
	flagClipboard    = "clipboard"
	flagSave         = "save"
	flagHistory      = "history"
	flagMetricsFile  = "metrics-file"
)

// flag aliases kept from older releases.
var aliases = map[string]string{
	"copy": flagClipboard,
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.IntP(flagLength, "l", config.DefaultLength, "password length")
	f.IntP(flagCount, "c", 1, "number of passwords to generate")
	f.BoolP(flagAlpha, "a", false, "letters only")
	f.BoolP(flagNumeric, "n", false, "digits only")
	f.Bool(flagAlphanumeric, false, "letters and digits, no symbols")
	f.String(flagCharset, "", "explicit character set, replaces the categories")
	f.StringP(flagExclude, "x", "", "characters to exclude")
	f.BoolP(flagNoRepeat, "r", false, "never repeat a character within a password")
	f.BoolP(flagEntropy, "e", false, "print the estimated entropy per password")
	f.String(flagAlgorithm, "mix64", "stream algorithm (mix64, chacha20)")
	f.Bool(flagShared, false, "seed one stream for the whole batch")
	f.Bool(flagClipboard, false, "copy the passwords to the clipboard")
	f.StringP(flagSave, "s", "", "append the passwords to this file")
	f.Bool(flagHistory, false, "record the generation in the history database")
	f.String(flagMetricsFile, "", "write prometheus metrics to this textfile")

	f.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if target, ok := aliases[name]; ok {
			name = target
		}

		return pflag.NormalizedName(name)
	})
}

// applyFlags copies every explicitly set generation flag into cfg.
// Flags that are not defined on cmd are ignored.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	g := &cfg.Generator

	changed := func(name string) bool {
		fl := f.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed(flagLength) {
		g.Length, _ = f.GetInt(flagLength)
	}

	if changed(flagCount) {
		g.Count, _ = f.GetInt(flagCount)
	}

	// mode flags only ever disable categories
	if on, _ := f.GetBool(flagAlphanumeric); changed(flagAlphanumeric) && on {
		g.Symbols = false
	}

	if on, _ := f.GetBool(flagAlpha); changed(flagAlpha) && on {
		g.Numeric = false
		g.Symbols = false
	}

	if on, _ := f.GetBool(flagNumeric); changed(flagNumeric) && on {
		g.Alpha = false
		g.Symbols = false
	}

	if changed(flagCharset) {
		g.Custom, _ = f.GetString(flagCharset)
	}

	if changed(flagExclude) {
		g.Exclude, _ = f.GetString(flagExclude)
	}

	if changed(flagNoRepeat) {
		g.NoRepeat, _ = f.GetBool(flagNoRepeat)
	}

	if changed(flagEntropy) {
		g.Entropy, _ = f.GetBool(flagEntropy)
	}

	if changed(flagAlgorithm) {
		g.Algorithm, _ = f.GetString(flagAlgorithm)
	}

	if changed(flagShared) {
		g.SharedStream, _ = f.GetBool(flagShared)
	}

	if changed(flagClipboard) {
		cfg.Output.Clipboard, _ = f.GetBool(flagClipboard)
	}

	if changed(flagSave) {
		cfg.Output.SavePath, _ = f.GetString(flagSave)
	}

	if changed(flagHistory) {
		cfg.History.Enabled, _ = f.GetBool(flagHistory)
	}

	if changed(flagMetricsFile) {
		cfg.Metrics.TextfilePath, _ = f.GetString(flagMetricsFile)
	}
}
