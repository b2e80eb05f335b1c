// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"github.com/pgen-dev/pgen/internal/config"
)

// pragmas applied to every history connection.
const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Create builds the sqlite Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	return cfg.History.Path + pragmas
}
