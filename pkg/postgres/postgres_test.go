package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "shop", Pass: "p@ss word", DB: "cakes"}
	assert.Equal(t, "postgres://shop:p%40ss%20word@db:5433/cakes?sslmode=disable", cfg.DSN())
}
