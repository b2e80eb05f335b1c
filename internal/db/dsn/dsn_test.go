package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgen-dev/pgen/internal/config"
)

func TestCreate(t *testing.T) {
	cfg := config.Config{History: config.History{Path: "/var/lib/pgen/history.db"}}

	assert.Equal(t,
		"/var/lib/pgen/history.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		Create(&cfg),
	)
}
