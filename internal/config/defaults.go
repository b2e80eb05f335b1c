package config

import (
	"github.com/spf13/viper"
)

const (
	// DefaultLength is the password length used when nothing else is configured.
	DefaultLength = 16

	// DefaultHistoryPath is the sqlite file of the generation history.
	DefaultHistoryPath = "pgen_history.db"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("generator.length", DefaultLength)
	v.SetDefault("generator.count", 1)
	v.SetDefault("generator.alpha", true)
	v.SetDefault("generator.numeric", true)
	v.SetDefault("generator.symbols", true)
	v.SetDefault("generator.custom", "")
	v.SetDefault("generator.exclude", "")
	v.SetDefault("generator.noRepeat", false)
	v.SetDefault("generator.entropy", false)
	v.SetDefault("generator.algorithm", "mix64")
	v.SetDefault("generator.sharedStream", false)
	v.SetDefault("generator.rejectionWarnThreshold", 64) //nolint:mnd

	v.SetDefault("output.clipboard", false)
	v.SetDefault("output.savePath", "")

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", DefaultHistoryPath)

	v.SetDefault("metrics.textfilePath", "")

	v.SetDefault("log.logLevel", "warn")
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.appName", "pgen")
	v.SetDefault("log.serviceName", "pgen")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.trace", "trace.log")
	v.SetDefault("log.file.warn", "warn.log")
}
