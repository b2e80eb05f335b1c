package config

import (
	"github.com/pgen-dev/pgen/internal/logger"
)

// Config overall data structure.
type Config struct {
	Generator Generator  `toml:"generator" mapstructure:"generator"`
	Output    Output     `toml:"output" mapstructure:"output"`
	History   History    `toml:"history" mapstructure:"history"`
	Metrics   Metrics    `toml:"metrics" mapstructure:"metrics"`
	Log       logger.Log `toml:"log" mapstructure:"log"`
}

// Generator holds the password generation defaults.
type Generator struct {
	Length   int    `toml:"length" mapstructure:"length" validate:"gte=1"`
	Count    int    `toml:"count" mapstructure:"count" validate:"gte=1"`
	Alpha    bool   `toml:"alpha" mapstructure:"alpha"`
	Numeric  bool   `toml:"numeric" mapstructure:"numeric"`
	Symbols  bool   `toml:"symbols" mapstructure:"symbols"`
	Custom   string `toml:"custom" mapstructure:"custom"`   // explicit charset, replaces the categories
	Exclude  string `toml:"exclude" mapstructure:"exclude"` // characters removed from the charset
	NoRepeat bool   `toml:"noRepeat" mapstructure:"noRepeat"`
	Entropy  bool   `toml:"entropy" mapstructure:"entropy"` // print the entropy estimate

	Algorithm    string `toml:"algorithm" mapstructure:"algorithm" validate:"oneof=mix64 chacha20"`
	SharedStream bool   `toml:"sharedStream" mapstructure:"sharedStream"` // one stream per batch

	// RejectionWarnThreshold logs a warning when a single draw rejects this many words.
	RejectionWarnThreshold int `toml:"rejectionWarnThreshold" mapstructure:"rejectionWarnThreshold" validate:"gte=1"`
}

// Output selects where passwords go besides stdout.
type Output struct {
	Clipboard bool   `toml:"clipboard" mapstructure:"clipboard"`
	SavePath  string `toml:"savePath" mapstructure:"savePath"`
}

// History configures the generation history database.
type History struct {
	Enabled bool   `toml:"enabled" mapstructure:"enabled"`
	Path    string `toml:"path" mapstructure:"path" validate:"required"`
}

// Metrics configures the prometheus textfile export.
type Metrics struct {
	TextfilePath string `toml:"textfilePath" mapstructure:"textfilePath"`
}
