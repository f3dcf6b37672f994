package db

import (
	"testing"

	"github.com/linskybing/creative-desk/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN_PinsUTC(t *testing.T) {
	oldHost, oldPort := config.DbHost, config.DbPort
	config.DbHost, config.DbPort = "db", "5432"
	t.Cleanup(func() { config.DbHost, config.DbPort = oldHost, oldPort })

	dsn := DSN()
	assert.Contains(t, dsn, "host=db port=5432")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
